// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// FileName is the JSON-lines span file written under the telemetry dir.
	FileName = "telemetry.jsonl"
	// MetricsFileName receives one JSON metrics export per flush.
	MetricsFileName = "metrics.jsonl"
)

var (
	mu       sync.Mutex
	tracer   trace.Tracer
	shutdown func(context.Context) error
)

// Init configures OpenTelemetry. Disabled telemetry installs noop
// providers. Enabled telemetry appends spans to dir/FileName and metrics to
// dir/MetricsFileName, both as JSON lines.
func Init(service string, enabled bool, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		tracer = tp.Tracer(service)
		shutdown = nil
		return nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	metricsFile, err := os.OpenFile(filepath.Join(dir, MetricsFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to open metrics file")
	}

	metricExp, err := stdoutmetric.New(
		stdoutmetric.WithWriter(metricsFile),
		stdoutmetric.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		_ = metricsFile.Close()
		return cerr.Wrap(err, "failed to create metrics exporter")
	}

	res := sdkresource.NewSchemaless(
		attribute.String("service.name", service),
		attribute.String("host.name", hostname()),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	// A pwgen run is short, so the reader mostly exports on Shutdown.
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	tracer = tp.Tracer(service)
	shutdown = func(ctx context.Context) error {
		return cerr.Join(tp.Shutdown(ctx), mp.Shutdown(ctx), file.Close(), metricsFile.Close())
	}
	return nil
}

// Shutdown flushes pending spans and metrics and closes their files.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	fn := shutdown
	shutdown = nil
	mu.Unlock()
	if fn == nil {
		return nil
	}
	return cerr.Wrap(fn(ctx), "flush telemetry")
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	mu.Lock()
	t := tracer
	mu.Unlock()
	if t == nil {
		t = otel.Tracer("pwgen")
	}
	return t.Start(ctx, name, trace.WithAttributes(attrs...))
}

func TruncateArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}

func CommandCategory(cmd string) string {
	switch cmd {
	case "generate", "interactive", "pwgen":
		return "generation"
	case "verify":
		return "verification"
	case "config", "show", "init":
		return "configuration"
	default:
		return "general"
	}
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
