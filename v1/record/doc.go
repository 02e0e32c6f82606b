// Package record assembles consumed Kafka messages into displayable records
// and filters them with JSONPath expressions.
//
// A Record carries the decoded key and value text produced by the
// deserializer package together with the message coordinates (topic,
// partition, offset), headers, and timestamp. Records marshal to camelCase
// JSON for export.
//
// Filtering evaluates a JSONPath expression against the record's JSON form;
// a record matches when the expression selects at least one node. Decoded
// key and value text that parses as JSON is exposed to the expression as
// structured data, so paths like $.value.customer.id reach into decoded
// payloads.
package record
