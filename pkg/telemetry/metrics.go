// pkg/telemetry/metrics.go
package telemetry

import (
	"context"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics are recorded against the global MeterProvider, which Init points
// at the metrics file when telemetry is enabled.
type Metrics struct {
	generated metric.Int64Counter
	failed    metric.Int64Counter
	length    metric.Int64Histogram
}

func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("pwgen")

	generated, err := meter.Int64Counter("pwgen_passwords_generated_total",
		metric.WithDescription("Total number of passwords generated"))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create passwords_generated counter")
	}

	failed, err := meter.Int64Counter("pwgen_generation_failures_total",
		metric.WithDescription("Total number of failed generation attempts"))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create generation_failures counter")
	}

	length, err := meter.Int64Histogram("pwgen_password_length",
		metric.WithDescription("Length of generated passwords"))
	if err != nil {
		return nil, cerr.Wrap(err, "failed to create password_length histogram")
	}

	return &Metrics{generated: generated, failed: failed, length: length}, nil
}

// RecordGenerated counts one password of the given length. Nil receivers
// are ignored.
func (m *Metrics) RecordGenerated(ctx context.Context, length int, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(attrs...)
	m.generated.Add(ctx, 1, opt)
	m.length.Record(ctx, int64(length), opt)
}

// RecordFailure counts a failed attempt, labelled with reason.
func (m *Metrics) RecordFailure(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
