package kafka

import "errors"

var (
	// ErrMissingBrokers is returned when no broker addresses are configured.
	ErrMissingBrokers = errors.New("at least one broker address is required")

	// ErrMissingTopic is returned when no topic is configured.
	ErrMissingTopic = errors.New("a topic is required")

	// ErrUnsupportedSASLMechanism is returned when the configured SASL
	// mechanism is not one of the supported values.
	ErrUnsupportedSASLMechanism = errors.New("unsupported SASL mechanism")

	// ErrBadCACertificate is returned when the configured CA certificate
	// file does not contain a parseable PEM certificate.
	ErrBadCACertificate = errors.New("CA certificate file contains no parseable certificate")
)
