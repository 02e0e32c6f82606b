// Package metrics provides Prometheus metrics for the kafscope decoding
// subsystem.
//
// It exposes counters for the behavior a user debugging a topic most often
// needs to see: schema cache effectiveness, registry traffic, and per-format
// decode failures. Metrics are registered on an isolated registry and served
// on a dedicated /metrics endpoint.
//
// All observation methods are safe to call on a nil *Metrics, so components
// can treat the collector as optional.
//
// Basic Usage:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "kafscope",
//	})
//	go m.Server.ListenAndServe()
//
//	m.ObserveCacheHit("schema")
//	m.ObserveDecodeFailure("avro")
//
// Using with FX:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "kafscope"}
//	    }),
//	)
package metrics
