// Package deserializer turns raw Kafka record bytes into display text.
//
// A record's key and value are decoded independently, each by a Deserializer
// chosen from the configured format:
//
//   - "none": the bytes are shown as text, with invalid UTF-8 replaced
//   - "json": the bytes are parsed and re-indented as JSON; when a schema
//     registry is configured, the payload is registry-framed and validated
//     against its JSON Schema instead
//   - "avro": the payload is registry-framed Avro, decoded with the writer
//     schema fetched by id
//   - "protobuf": the payload is registry-framed Protobuf, decoded against a
//     message descriptor from the local schema files
//
// Deserializers returned by New are safe for concurrent use. Decoding is
// read-only inspection: a failure to decode one record is reported as an
// error for that record and never affects the consuming session.
package deserializer
