package schemaregistry

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kafscope/kafscope/v1/metrics"
)

// Cache entry kinds used as metric labels.
const (
	cacheKindSchema   = "schema"
	cacheKindVersions = "versions"
	cacheKindID       = "id"
)

// schemaKey identifies one cached schema. LatestVersion keys the "latest"
// slot independently of any concrete version of the same subject.
type schemaKey struct {
	subject Subject
	version Version
}

// entry is a cached value together with the time it was installed.
type entry[T any] struct {
	value      T
	insertedAt time.Time
}

func (e entry[T]) stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.insertedAt) >= ttl
}

// CachedClient wraps a Client with a time-bounded cache so that the many
// concurrent decode operations of a consuming session do not issue redundant
// registry calls.
//
// Schemas are cached per (subject, version) and version lists per subject,
// independently. Entries are created lazily on first lookup and refreshed
// lazily once stale; there is no background sweeper and nothing is ever
// evicted. Subject listing is never cached.
//
// A registry failure is always propagated to the caller; the cache never
// falls back to a stale entry.
//
// CachedClient implements the Client interface.
type CachedClient struct {
	client    Client
	ttl       time.Duration
	logger    *zap.Logger
	collector *metrics.Metrics

	// now is replaceable in tests.
	now func() time.Time

	mu       sync.RWMutex
	schemas  map[schemaKey]entry[Schema]
	versions map[Subject]entry[[]Version]
	byID     map[int]entry[Schema]
}

// NewCachedClient creates a cache in front of the given registry client.
func NewCachedClient(client Client, cfg CacheConfig) *CachedClient {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultCacheTTL
	}

	return &CachedClient{
		client:   client,
		ttl:      cfg.TTL,
		logger:   zap.NewNop(),
		now:      time.Now,
		schemas:  make(map[schemaKey]entry[Schema]),
		versions: make(map[Subject]entry[[]Version]),
		byID:     make(map[int]entry[Schema]),
	}
}

// WithLogger sets the logger used for cache diagnostics and returns the
// client for chaining.
func (c *CachedClient) WithLogger(logger *zap.Logger) *CachedClient {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithMetrics sets the metrics collector observing cache behavior and
// returns the client for chaining.
func (c *CachedClient) WithMetrics(collector *metrics.Metrics) *CachedClient {
	c.collector = collector
	return c
}

// ListSubjects always goes to the registry. Subject enumeration is volatile
// enough that serving it from a cache would mislead the schema browser.
func (c *CachedClient) ListSubjects(ctx context.Context) ([]Subject, error) {
	subjects, err := c.client.ListSubjects(ctx)
	c.collector.ObserveRegistryRequest("list-subjects", err)
	return subjects, err
}

// GetSchema returns the cached schema for (subject, version) when it is
// still fresh, and otherwise fetches it from the registry.
//
// The write back into the cache is conditional: if a concurrent, faster
// fetch installed a fresh value while this one was in flight, that value is
// kept and returned, so every caller observes the same schema.
func (c *CachedClient) GetSchema(ctx context.Context, subject Subject, version Version) (Schema, error) {
	key := schemaKey{subject: subject, version: version}

	c.mu.RLock()
	cached, ok := c.schemas[key]
	c.mu.RUnlock()

	if ok && !cached.stale(c.now(), c.ttl) {
		c.collector.ObserveCacheHit(cacheKindSchema)
		return cached.value, nil
	}
	c.collector.ObserveCacheMiss(cacheKindSchema)

	schema, err := c.client.GetSchema(ctx, subject, version)
	c.collector.ObserveRegistryRequest("get-schema", err)
	if err != nil {
		return Schema{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.schemas[key]; ok && !current.stale(c.now(), c.ttl) {
		c.logger.Debug("schema cache entry already refreshed by concurrent fetch",
			zap.String("subject", subject.String()),
			zap.Int("version", int(version)))
		return current.value, nil
	}

	c.schemas[key] = entry[Schema]{value: schema, insertedAt: c.now()}
	return schema, nil
}

// GetSchemaVersions returns the cached version list for the subject when it
// is still fresh, and otherwise fetches it from the registry. The write
// discipline matches GetSchema.
func (c *CachedClient) GetSchemaVersions(ctx context.Context, subject Subject) ([]Version, error) {
	c.mu.RLock()
	cached, ok := c.versions[subject]
	c.mu.RUnlock()

	if ok && !cached.stale(c.now(), c.ttl) {
		c.collector.ObserveCacheHit(cacheKindVersions)
		return cached.value, nil
	}
	c.collector.ObserveCacheMiss(cacheKindVersions)

	versions, err := c.client.GetSchemaVersions(ctx, subject)
	c.collector.ObserveRegistryRequest("get-schema-versions", err)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.versions[subject]; ok && !current.stale(c.now(), c.ttl) {
		c.logger.Debug("version list cache entry already refreshed by concurrent fetch",
			zap.String("subject", subject.String()))
		return current.value, nil
	}

	c.versions[subject] = entry[[]Version]{value: versions, insertedAt: c.now()}
	return versions, nil
}

// SchemaByID returns the cached schema for the id when it is still fresh,
// and otherwise fetches it from the registry. Ids are immutable in the
// registry, but the entry still expires with the TTL so one misbehaving
// registry response does not stick forever. The write discipline matches
// GetSchema.
func (c *CachedClient) SchemaByID(ctx context.Context, id int) (Schema, error) {
	c.mu.RLock()
	cached, ok := c.byID[id]
	c.mu.RUnlock()

	if ok && !cached.stale(c.now(), c.ttl) {
		c.collector.ObserveCacheHit(cacheKindID)
		return cached.value, nil
	}
	c.collector.ObserveCacheMiss(cacheKindID)

	schema, err := c.client.SchemaByID(ctx, id)
	c.collector.ObserveRegistryRequest("get-schema-by-id", err)
	if err != nil {
		return Schema{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.byID[id]; ok && !current.stale(c.now(), c.ttl) {
		c.logger.Debug("schema id cache entry already refreshed by concurrent fetch",
			zap.Int("id", id))
		return current.value, nil
	}

	c.byID[id] = entry[Schema]{value: schema, insertedAt: c.now()}
	return schema, nil
}
