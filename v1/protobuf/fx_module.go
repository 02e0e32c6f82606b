package protobuf

import (
	"go.uber.org/fx"

	"github.com/kafscope/kafscope/v1/logger"
)

// FXModule defines the Fx module for the protobuf package.
// It provides the descriptor store built from the configured schema file
// directory. Construction failure aborts application startup.
//
// Dependencies required by this module:
//   - protobuf.Config instance
//   - logger.FXModule
var FXModule = fx.Module("protobuf",
	fx.Provide(NewDescriptorStoreWithDI),
)

// Params groups the dependencies needed to build the descriptor store.
type Params struct {
	fx.In

	Config Config
	Logger *logger.Logger
}

// NewDescriptorStoreWithDI builds the descriptor store for the dependency
// injection container.
func NewDescriptorStoreWithDI(params Params) (*DescriptorStore, error) {
	return NewDescriptorStore(params.Config, params.Logger.Zap)
}
