package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// Default configuration values for the consumer.
const (
	// DefaultMinBytes is the minimum batch size the reader accepts.
	DefaultMinBytes = 1

	// DefaultMaxBytes is the maximum batch size the reader accepts.
	DefaultMaxBytes = 10 << 20 // 10 MiB

	// DefaultMaxWait is the maximum time the reader waits for DefaultMinBytes.
	DefaultMaxWait = 500 * time.Millisecond

	// DefaultStartOffset makes a groupless session start at the newest
	// record, which is what a live browsing session wants.
	DefaultStartOffset = kafka.LastOffset
)

// Config holds configuration for the Kafka consumer.
type Config struct {
	// Brokers is the list of broker addresses to bootstrap from. Required.
	Brokers []string

	// Topic to consume. Required.
	Topic string

	// GroupID joins a consumer group and resumes from its committed
	// offsets. Leave empty for a groupless browsing session.
	// Default: "" (no group)
	GroupID string

	// Partition to consume when no group is used.
	// Default: 0
	Partition int

	// StartOffset is where a groupless session starts.
	// Default: kafka.LastOffset
	StartOffset int64

	// MinBytes is the minimum batch size the reader accepts.
	// Default: 1
	MinBytes int

	// MaxBytes is the maximum batch size the reader accepts.
	// Default: 10 MiB
	MaxBytes int

	// MaxWait is the maximum time the reader waits for MinBytes.
	// Default: 500ms
	MaxWait time.Duration

	// TLS configures transport encryption.
	TLS TLSConfig

	// SASL configures broker authentication.
	SASL SASLConfig
}

// TLSConfig holds TLS settings for the broker connection.
type TLSConfig struct {
	// Enabled turns TLS on.
	// Default: false
	Enabled bool

	// CACertPath is the path of a PEM file with the CA certificate to trust.
	// Empty means the system pool.
	CACertPath string

	// ClientCertPath and ClientKeyPath enable mutual TLS when both are set.
	ClientCertPath string
	ClientKeyPath  string

	// InsecureSkipVerify disables certificate verification.
	// Default: false
	InsecureSkipVerify bool
}

// SASLConfig holds SASL settings for the broker connection.
type SASLConfig struct {
	// Enabled turns SASL on.
	// Default: false
	Enabled bool

	// Mechanism is one of PLAIN, SCRAM-SHA-256, SCRAM-SHA-512.
	Mechanism string

	// Username and Password authenticate with the chosen mechanism.
	Username string
	Password string
}
