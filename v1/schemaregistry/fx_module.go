package schemaregistry

import (
	"go.uber.org/fx"

	"github.com/kafscope/kafscope/v1/logger"
	"github.com/kafscope/kafscope/v1/metrics"
)

// FXModule defines the Fx module for the schemaregistry package.
// It provides the registry client and the cached client that the decode path
// and the schema browser share.
//
// Dependencies required by this module:
//   - schemaregistry.Config and schemaregistry.CacheConfig instances
//   - logger.FXModule (and optionally metrics.FXModule)
var FXModule = fx.Module("schemaregistry",
	fx.Provide(
		NewClientWithDI,
		NewCachedClientWithDI,
	),
)

// ClientParams groups the dependencies needed to create the registry client.
type ClientParams struct {
	fx.In

	Config Config
}

// NewClientWithDI creates the registry client for the dependency injection
// container.
func NewClientWithDI(params ClientParams) (*RegistryClient, error) {
	return NewClient(params.Config)
}

// CachedClientParams groups the dependencies needed to create the cached
// client. The metrics collector is optional.
type CachedClientParams struct {
	fx.In

	Client    *RegistryClient
	Config    CacheConfig
	Logger    *logger.Logger
	Collector *metrics.Metrics `optional:"true"`
}

// NewCachedClientWithDI creates the cached client for the dependency
// injection container, binding it to the Client interface so consumers are
// unaware of the caching layer.
func NewCachedClientWithDI(params CachedClientParams) Client {
	return NewCachedClient(params.Client, params.Config).
		WithLogger(params.Logger.Zap).
		WithMetrics(params.Collector)
}
