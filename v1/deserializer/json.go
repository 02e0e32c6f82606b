package deserializer

import (
	"bytes"
	"context"
	"encoding/json"
	"unicode/utf8"
)

// JSONDeserializer parses record bytes as ad hoc JSON, without any schema,
// and re-indents them for display. Used for the "json" format when no schema
// registry is configured.
//
// JSONDeserializer implements the Deserializer interface.
type JSONDeserializer struct{}

// NewJSONDeserializer creates a deserializer for schemaless JSON payloads.
func NewJSONDeserializer() *JSONDeserializer {
	return &JSONDeserializer{}
}

// Deserialize returns the payload as indented JSON text. Empty payloads
// (tombstones) deserialize to the empty string.
func (d *JSONDeserializer) Deserialize(_ context.Context, _ SerializationContext, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if !utf8.Valid(data) || !json.Valid(data) {
		return "", ErrInvalidJSON
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", ErrInvalidJSON
	}
	return buf.String(), nil
}
