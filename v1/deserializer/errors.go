package deserializer

import "errors"

var (
	// ErrUnknownFormat is returned when a record format name is not one of
	// the supported values.
	ErrUnknownFormat = errors.New("unknown record format")

	// ErrMissingRegistry is returned when a format that resolves schemas by
	// id is configured without a schema registry client.
	ErrMissingRegistry = errors.New("record format requires a schema registry")

	// ErrMissingDescriptorStore is returned when the protobuf format is
	// configured without a schema file directory to build descriptors from.
	ErrMissingDescriptorStore = errors.New("protobuf record format requires a descriptor store")

	// ErrMissingMessageType is returned when the protobuf format is
	// configured without the fully qualified message type to decode with.
	ErrMissingMessageType = errors.New("protobuf record format requires a message type")

	// ErrShortFrame is returned when a payload is too short to carry the
	// registry framing that precedes the encoded data.
	ErrShortFrame = errors.New("payload too short for schema registry framing")

	// ErrInvalidMagic is returned when the first framing byte is not the
	// registry magic marker, meaning the payload was not produced with
	// registry framing at all.
	ErrInvalidMagic = errors.New("payload does not start with the schema registry magic byte")

	// ErrInvalidJSON is returned when a payload configured as ad hoc JSON
	// does not parse.
	ErrInvalidJSON = errors.New("payload is not valid JSON")
)
