// Package kafka consumes records from a Kafka topic for inspection.
//
// The consumer is read-only: it never produces, and by default it does not
// join a consumer group, so browsing a topic leaves no committed offsets
// behind. Set GroupID to resume from committed offsets instead.
//
// Consumed messages are decoded into record.Record values with the
// deserializer pair configured for the session. A record that fails to
// decode is reported as an error for that record; the consumer stays usable
// and the next Fetch continues from the following offset.
//
// TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) are supported for
// brokers that require them.
package kafka
