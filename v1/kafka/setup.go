package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
	"go.uber.org/zap"

	"github.com/kafscope/kafscope/v1/deserializer"
	"github.com/kafscope/kafscope/v1/record"
)

// Consumer reads records from one topic and decodes them for display.
//
// Consumer methods must not be called concurrently; a consuming session is
// driven by a single loop.
type Consumer struct {
	reader        *kafka.Reader
	deserializers deserializer.Deserializers
	logger        *zap.Logger
}

// NewConsumer creates a consumer for the configured topic. The connection is
// established lazily on the first Fetch.
func NewConsumer(cfg Config, d deserializer.Deserializers, logger *zap.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrMissingBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrMissingTopic
	}
	if cfg.MinBytes == 0 {
		cfg.MinBytes = DefaultMinBytes
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxWait == 0 {
		cfg.MaxWait = DefaultMaxWait
	}
	if cfg.StartOffset == 0 {
		cfg.StartOffset = DefaultStartOffset
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dialer := &kafka.Dialer{}

	if cfg.TLS.Enabled {
		tlsConfig, err := newTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		dialer.TLS = tlsConfig
	}

	if cfg.SASL.Enabled {
		mechanism, err := newSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, err
		}
		dialer.SASLMechanism = mechanism
	}

	readerConfig := kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		MinBytes: cfg.MinBytes,
		MaxBytes: cfg.MaxBytes,
		MaxWait:  cfg.MaxWait,
		Dialer:   dialer,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error("kafka reader error", zap.String("detail", fmt.Sprintf(msg, args...)))
		}),
	}

	if cfg.GroupID != "" {
		readerConfig.GroupID = cfg.GroupID
	} else {
		readerConfig.Partition = cfg.Partition
		readerConfig.StartOffset = cfg.StartOffset
	}

	logger.Info("kafka consumer configured",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
		zap.String("groupId", cfg.GroupID),
		zap.Bool("tls", cfg.TLS.Enabled),
		zap.Bool("sasl", cfg.SASL.Enabled))

	return &Consumer{
		reader:        kafka.NewReader(readerConfig),
		deserializers: d,
		logger:        logger,
	}, nil
}

// Fetch blocks until the next record arrives, then decodes it. A decode
// failure is returned as the error for that record; the consumer remains
// usable and the next call continues from the following offset.
func (c *Consumer) Fetch(ctx context.Context) (record.Record, error) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return record.Record{}, fmt.Errorf("read message from %s: %w", c.reader.Config().Topic, err)
	}

	rec, err := record.FromMessage(ctx, msg, c.deserializers)
	if err != nil {
		c.logger.Warn("record failed to decode",
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err))
		return record.Record{}, err
	}
	return rec, nil
}

// Close releases the reader's connections. The consumer cannot be used
// afterward.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// newTLSConfig builds the TLS settings for the broker connection.
func newTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if cfg.CACertPath != "" {
		pem, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: %s", ErrBadCACertificate, cfg.CACertPath)
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// newSASLMechanism builds the SASL mechanism for the broker connection.
func newSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{Username: cfg.Username, Password: cfg.Password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSASLMechanism, cfg.Mechanism)
	}
}
