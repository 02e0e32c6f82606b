package schemaregistry

import "errors"

// Common schema registry errors
var (
	// ErrMissingURL is returned when a client is constructed without a
	// registry endpoint.
	ErrMissingURL = errors.New("schemaregistry: registry URL is required")

	// ErrInvalidVersion is returned when a negative schema version is
	// requested.
	ErrInvalidVersion = errors.New("schemaregistry: schema version must be positive")
)
