package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/kafscope/kafscope/v1/deserializer"
	"github.com/kafscope/kafscope/v1/logger"
)

// FXModule defines the Fx module for the kafka package.
// It provides the consumer and closes it on application shutdown.
//
// Dependencies required by this module:
//   - kafka.Config instance
//   - deserializer.FXModule
//   - logger.FXModule
var FXModule = fx.Module("kafka",
	fx.Provide(NewConsumerWithDI),
)

// Params groups the dependencies needed to create the consumer.
type Params struct {
	fx.In

	Config        Config
	Deserializers deserializer.Deserializers
	Logger        *logger.Logger
	Lifecycle     fx.Lifecycle
}

// NewConsumerWithDI creates the consumer for the dependency injection
// container and hooks its shutdown into the Fx lifecycle.
func NewConsumerWithDI(params Params) (*Consumer, error) {
	consumer, err := NewConsumer(params.Config, params.Deserializers, params.Logger.Zap)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return consumer.Close()
		},
	})

	return consumer, nil
}
