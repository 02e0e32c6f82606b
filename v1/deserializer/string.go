package deserializer

import (
	"context"
	"strings"
)

// StringDeserializer shows record bytes as text. Byte sequences that are not
// valid UTF-8 are replaced with the Unicode replacement character, so it
// never fails.
//
// StringDeserializer implements the Deserializer interface.
type StringDeserializer struct{}

// NewStringDeserializer creates a deserializer that renders bytes as text.
func NewStringDeserializer() *StringDeserializer {
	return &StringDeserializer{}
}

// Deserialize returns the bytes as a string with invalid UTF-8 replaced.
func (d *StringDeserializer) Deserialize(_ context.Context, _ SerializationContext, data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), "�"), nil
}
