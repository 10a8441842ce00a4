package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records job outcomes through an OpenTelemetry meter exported to the
// default Prometheus registry, so /metrics serves both the promauto and otel series.
type Observability struct {
	meterProvider *metric.MeterProvider
	jobCounter    otelmetric.Int64Counter
	jobDuration   otelmetric.Float64Histogram
}

// New builds the meter provider on the Prometheus exporter and installs it globally. On
// exporter failure it returns a usable no-op value together with the error.
func New(serviceName string) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return &Observability{}, err
	}

	obs, err := NewWithReader(serviceName, exporter)
	otel.SetMeterProvider(obs.meterProvider)
	return obs, err
}

// NewWithReader builds the job instruments on a provider that feeds reader.
func NewWithReader(serviceName string, reader metric.Reader) (*Observability, error) {
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	meter := provider.Meter(serviceName)

	jobCounter, err := meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)
	if err != nil {
		return &Observability{meterProvider: provider}, err
	}

	jobDuration, err := meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return &Observability{meterProvider: provider, jobCounter: jobCounter}, err
	}

	return &Observability{
		meterProvider: provider,
		jobCounter:    jobCounter,
		jobDuration:   jobDuration,
	}, nil
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o == nil || o.jobCounter == nil {
		return
	}
	o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o == nil || o.jobDuration == nil {
		return
	}
	o.jobDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.meterProvider.Shutdown(ctx)
}
