package metrics

import (
	"context"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const MeterName = "github.com/nais/jaws-deploy"

type Metrics struct {
	Errors             metric.Int64Counter
	polls              metric.Int64Counter
	logEntries         metric.Int64Counter
	deploymentDuration metric.Int64Histogram
}

func New(meter metric.Meter) (*Metrics, error) {
	errors, err := meter.Int64Counter("errors", metric.WithDescription("errors talking to the deployment api"))
	if err != nil {
		return nil, fmt.Errorf("failed to create errors counter: %w", err)
	}

	polls, err := meter.Int64Counter("deployment_polls", metric.WithDescription("deployment status requests"))
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment_polls counter: %w", err)
	}

	logEntries, err := meter.Int64Counter("deployment_log_entries", metric.WithDescription("deployment log entries received, by level"))
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment_log_entries counter: %w", err)
	}

	duration, err := meter.Int64Histogram("deployment_duration", metric.WithDescription("time from first poll to terminal status"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment_duration histogram: %w", err)
	}

	return &Metrics{
		Errors:             errors,
		polls:              polls,
		logEntries:         logEntries,
		deploymentDuration: duration,
	}, nil
}

// Poll records a status request and its reported status.
func (m *Metrics) Poll(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.polls.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (m *Metrics) LogEntry(ctx context.Context, level string) {
	if m == nil {
		return
	}
	m.logEntries.Add(ctx, 1, metric.WithAttributes(attribute.String("level", level)))
}

func (m *Metrics) Finished(ctx context.Context, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.deploymentDuration.Record(ctx, d.Milliseconds(), metric.WithAttributes(attribute.String("status", status)))
}

// Provider is a meter provider exporting to a private prometheus registry.
type Provider struct {
	*sdkmetric.MeterProvider
	registry *promclient.Registry
}

func NewProvider() (*Provider, error) {
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	return &Provider{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
		registry:      registry,
	}, nil
}

func (p *Provider) Meter() metric.Meter {
	return p.MeterProvider.Meter(MeterName)
}

// WriteTextfile writes all collected metrics in the prometheus text format, suitable for the
// node-exporter textfile collector.
func (p *Provider) WriteTextfile(path string) error {
	if err := promclient.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("writing metrics to %q: %w", path, err)
	}
	return nil
}
