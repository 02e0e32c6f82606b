package schemaregistry

import "context"

// Client defines the behavior required to interact with a schema registry to
// retrieve subjects and schemas.
//
// This interface is implemented by the concrete *RegistryClient type and by
// *CachedClient, which wraps any Client with a TTL cache.
type Client interface {
	// ListSubjects loads all of the non-deleted subjects from the schema
	// registry.
	ListSubjects(ctx context.Context) ([]Subject, error)

	// GetSchema loads the schema for the specified version of the given
	// subject from the schema registry. Pass LatestVersion to retrieve
	// whatever version the registry currently considers latest.
	GetSchema(ctx context.Context, subject Subject, version Version) (Schema, error)

	// GetSchemaVersions loads all available versions for the specified
	// subject from the schema registry.
	GetSchemaVersions(ctx context.Context, subject Subject) ([]Version, error)

	// SchemaByID loads the schema with the given registry-assigned id.
	// Record decoding resolves schemas this way, from the id embedded in
	// the framed payload.
	SchemaByID(ctx context.Context, id int) (Schema, error)
}
