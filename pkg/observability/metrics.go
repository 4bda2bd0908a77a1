package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	// Registry receives the exporter's collector. Nil uses a fresh registry.
	Registry    *prometheus.Registry
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return provider, handler, nil
}

// Metrics holds the dashboard's instruments.
type Metrics struct {
	evaluations metric.Int64Counter
	renders     metric.Int64Counter
	actions     metric.Int64Counter
}

// NewMetrics creates the dashboard instruments on the given provider.
func NewMetrics(provider metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := provider.Meter(serviceName)

	evaluations, err := meter.Int64Counter("claims.evaluations",
		metric.WithDescription("Claims evaluated, by fraud evaluation label"))
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluations counter: %w", err)
	}

	renders, err := meter.Int64Counter("dashboard.renders",
		metric.WithDescription("Dashboard renders, by surface"))
	if err != nil {
		return nil, fmt.Errorf("failed to create renders counter: %w", err)
	}

	actions, err := meter.Int64Counter("claim.actions",
		metric.WithDescription("Approve and flag actions, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create actions counter: %w", err)
	}

	return &Metrics{evaluations: evaluations, renders: renders, actions: actions}, nil
}

// RecordEvaluation counts one claim evaluation.
func (m *Metrics) RecordEvaluation(ctx context.Context, fraudEvaluation string) {
	if m == nil {
		return
	}
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("fraud_evaluation", fraudEvaluation)))
}

// RecordRender counts one dashboard render on the named surface.
func (m *Metrics) RecordRender(ctx context.Context, surface string) {
	if m == nil {
		return
	}
	m.renders.Add(ctx, 1, metric.WithAttributes(attribute.String("surface", surface)))
}

// RecordAction counts one claim action and its outcome.
func (m *Metrics) RecordAction(ctx context.Context, action, outcome string) {
	if m == nil {
		return
	}
	m.actions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	))
}
