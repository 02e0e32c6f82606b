package deserializer

import (
	"go.uber.org/fx"

	"github.com/kafscope/kafscope/v1/logger"
	"github.com/kafscope/kafscope/v1/metrics"
	"github.com/kafscope/kafscope/v1/protobuf"
	"github.com/kafscope/kafscope/v1/schemaregistry"
)

// FXModule defines the Fx module for the deserializer package.
// It provides the Deserializers pair built from the configured formats.
//
// Dependencies required by this module:
//   - deserializer.Config instance
//   - logger.FXModule
//   - optionally schemaregistry.FXModule, protobuf.FXModule, metrics.FXModule
var FXModule = fx.Module("deserializer",
	fx.Provide(NewWithDI),
)

// Params groups the dependencies needed to build the deserializers. The
// registry client, descriptor store, and metrics collector are optional;
// formats that need a missing one fail construction.
type Params struct {
	fx.In

	Config    Config
	Logger    *logger.Logger
	Registry  schemaregistry.Client     `optional:"true"`
	Store     *protobuf.DescriptorStore `optional:"true"`
	Collector *metrics.Metrics          `optional:"true"`
}

// NewWithDI builds the deserializer pair for the dependency injection
// container.
func NewWithDI(params Params) (Deserializers, error) {
	var provider SchemaProvider
	if params.Registry != nil {
		provider = params.Registry
	}
	return New(params.Config, provider, params.Store, params.Logger.Zap, params.Collector)
}
