package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	// Core built-in metrics
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	registryRequests *prometheus.CounterVec
	decodeFailures   *prometheus.CounterVec

	registerer prometheus.Registerer
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the decoding
// subsystem's counters, wraps all metrics with a constant `service` label,
// and creates an HTTP server exposing the /metrics endpoint.
//
// The caller owns the server lifecycle; FXModule wires it into the Fx
// lifecycle automatically.
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	// Each process gets an isolated registry so metric names cannot collide
	// with anything else linked into the host application.
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
	}

	m.cacheHits = createCounterVec("schema_cache_hits_total",
		"Total number of schema cache lookups served from a fresh entry", []string{"kind"})
	m.cacheMisses = createCounterVec("schema_cache_misses_total",
		"Total number of schema cache lookups that required a registry fetch", []string{"kind"})
	m.registryRequests = createCounterVec("schema_registry_requests_total",
		"Total number of requests issued to the schema registry", []string{"operation", "outcome"})
	m.decodeFailures = createCounterVec("record_decode_failures_total",
		"Total number of records that failed to decode", []string{"format"})

	wrappedRegistry.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.registryRequests,
		m.decodeFailures,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return m
}

// ObserveCacheHit increments the cache hit counter for the given entry kind
// ("schema", "versions", or "id").
func (m *Metrics) ObserveCacheHit(kind string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(kind).Inc()
}

// ObserveCacheMiss increments the cache miss counter for the given entry
// kind ("schema", "versions", or "id").
func (m *Metrics) ObserveCacheMiss(kind string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(kind).Inc()
}

// ObserveRegistryRequest increments the registry request counter for the
// given operation, labeling the outcome as "success" or "error".
func (m *Metrics) ObserveRegistryRequest(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.registryRequests.WithLabelValues(operation, outcome).Inc()
}

// ObserveDecodeFailure increments the decode failure counter for the given
// record format.
func (m *Metrics) ObserveDecodeFailure(format string) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(format).Inc()
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	m.registerer.MustRegister(gauge)
	return gauge
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
}
