package protobuf

import "errors"

// Common protobuf decoding errors
var (
	// ErrMissingProtoDir is returned when a descriptor store is constructed
	// without a schema file directory.
	ErrMissingProtoDir = errors.New("protobuf: proto directory is required")

	// ErrNoProtoFiles is returned when the configured directory tree
	// contains no .proto files.
	ErrNoProtoFiles = errors.New("protobuf: no .proto files found")

	// ErrMessageNotFound is returned when the configured message type is not
	// defined by any parsed schema file.
	ErrMessageNotFound = errors.New("protobuf: message type not found")

	// ErrShortMessage is returned when a payload is too short to carry the
	// registry framing bytes.
	ErrShortMessage = errors.New("protobuf: payload shorter than registry framing")
)
