package metrics

// Config holds configuration for the metrics endpoint.
type Config struct {
	// Address is the listen address for the /metrics HTTP server
	// Default: ":9090"
	Address string

	// ServiceName is attached to every metric as the "service" label
	// Default: "kafscope"
	ServiceName string

	// EnableDefaultCollectors registers the standard Go runtime, process,
	// and build info collectors in addition to the domain metrics
	// Default: false
	EnableDefaultCollectors bool
}

// Default configuration values for the metrics endpoint.
const (
	DefaultAddress     = ":9090"
	DefaultServiceName = "kafscope"
)
