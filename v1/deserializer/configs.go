package deserializer

import (
	"fmt"
	"strings"
)

// Format names the decoding applied to one side (key or value) of a record.
type Format string

const (
	// FormatNone shows the raw bytes as text.
	FormatNone Format = "none"

	// FormatJSON parses the payload as JSON. With a schema registry
	// configured the payload is expected to be registry-framed and is
	// validated against its JSON Schema.
	FormatJSON Format = "json"

	// FormatAvro decodes registry-framed Avro.
	FormatAvro Format = "avro"

	// FormatProtobuf decodes registry-framed Protobuf against local schema
	// files.
	FormatProtobuf Format = "protobuf"
)

// ParseFormat parses a record format name, case-insensitively. The empty
// string parses to FormatNone.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatNone:
		return FormatNone, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatAvro:
		return FormatAvro, nil
	case FormatProtobuf:
		return FormatProtobuf, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Config holds configuration for building the key and value deserializers of
// a consuming session.
type Config struct {
	// KeyFormat is the record format applied to keys.
	// Default: "none"
	KeyFormat Format

	// ValueFormat is the record format applied to values.
	// Default: "none"
	ValueFormat Format

	// KeyMessageType is the fully qualified Protobuf message type used to
	// decode keys. Required when KeyFormat is "protobuf".
	KeyMessageType string

	// ValueMessageType is the fully qualified Protobuf message type used to
	// decode values. Required when ValueFormat is "protobuf".
	ValueMessageType string
}
