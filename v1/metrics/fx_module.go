package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the metrics package.
// This module provides the Metrics instance and manages the lifecycle of the
// /metrics HTTP server.
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the /metrics HTTP server when the
// application starts and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					// The host application keeps running without metrics;
					// decoding does not depend on the endpoint.
					return
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
