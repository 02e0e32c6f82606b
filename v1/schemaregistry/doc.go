// Package schemaregistry provides access to a Confluent Schema Registry for
// the kafscope decoding subsystem.
//
// It defines the subject/version/schema model used by the schema browser and
// the registry-backed deserializers, a Client implementation built on
// srclient, and a time-bounded, concurrency-safe cache that sits in front of
// the registry to keep repeated lookups from hammering it.
//
// Core Features:
//   - Subject, Version, Schema, and SchemaRef value types
//   - Client interface: list subjects, fetch a schema by subject and
//     optional version, list a subject's versions, fetch a schema by the id
//     embedded in registry-framed payloads
//   - TTL cache with read-through semantics: entries are refreshed lazily on
//     access, writes are conditional so a slow stale fetch never overwrites
//     a value a faster concurrent fetch already installed
//   - Subject listing is deliberately never cached; it is assumed volatile
//
// Basic Usage:
//
//	client, err := schemaregistry.NewClient(schemaregistry.Config{
//	    URL: "http://localhost:8081",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cached := schemaregistry.NewCachedClient(client, schemaregistry.CacheConfig{})
//
//	schema, err := cached.GetSchema(ctx, "orders-value", schemaregistry.LatestVersion)
//
// Using with FX:
//
//	app := fx.New(
//	    schemaregistry.FXModule,
//	    fx.Provide(func() schemaregistry.Config {
//	        return schemaregistry.Config{URL: os.Getenv("SCHEMA_REGISTRY_URL")}
//	    }),
//	)
package schemaregistry
