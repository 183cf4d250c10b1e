// Package observability initialises OpenTelemetry tracing.
package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"agency-backoffice/internal/config/configs"
)

// TracerName is the instrumentation scope used by the use cases.
const TracerName = "agency-backoffice"

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitTracing installs a global tracer provider when tracing is enabled and
// returns its shutdown function. When disabled the global no-op provider is
// left in place. Exporter failures are logged and tracing stays disabled
// rather than failing startup.
func InitTracing(ctx context.Context, logger *slog.Logger, env string, cfg configs.Otel) Shutdown {
	if !cfg.Enabled {
		return noopShutdown
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			attribute.String("deployment.environment", env),
		),
	)
	if err != nil {
		logger.Warn("otel resource init failed (continuing)", slog.Any("error", err))
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		logger.Warn("otel exporter init failed, tracing disabled", slog.Any("error", err))
		return noopShutdown
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Ratio()))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("otel tracing initialized",
		slog.String("service", cfg.ServiceName),
		slog.String("exporter", cfg.ExporterKind()),
		slog.Float64("ratio", cfg.Ratio()),
	)
	return tp.Shutdown
}

func newExporter(ctx context.Context, cfg configs.Otel) (sdktrace.SpanExporter, error) {
	if cfg.ExporterKind() == "otlp" {
		var opts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
