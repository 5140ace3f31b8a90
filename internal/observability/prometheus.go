package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName identifies the showlens instrumentation scope.
const meterName = "github.com/showlens/showlens"

// Setup wires a Prometheus exporter into an OTel MeterProvider and
// returns the metric instruments together with the http.Handler that
// serves the /metrics scrape endpoint. Each call creates an
// independent registry to avoid collector conflicts when called
// multiple times.
func Setup() (*REDMetrics, http.Handler, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	metrics, err := NewREDMetrics(provider.Meter(meterName))
	if err != nil {
		return nil, nil, err
	}

	return metrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
