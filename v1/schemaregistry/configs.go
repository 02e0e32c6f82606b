package schemaregistry

import "time"

// Config holds configuration for the schema registry client.
type Config struct {
	// URL is the schema registry endpoint (e.g., "http://localhost:8081")
	URL string

	// Username for basic auth (optional)
	Username string

	// Password for basic auth (optional)
	Password string

	// BearerToken for token auth (optional, takes precedence over basic auth)
	BearerToken string

	// Timeout for HTTP requests against the registry
	// Default: 10 seconds
	Timeout time.Duration
}

// CacheConfig holds configuration for the schema cache.
type CacheConfig struct {
	// TTL is the maximum age after which a cached schema or version list is
	// considered stale and refetched on next access
	// Default: 5 minutes
	TTL time.Duration
}

// Default configuration values for the registry client and cache.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute
)
