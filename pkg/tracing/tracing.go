package tracing

import (
	"context"
	"fmt"

	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New installs the global tracer provider. Without an OTLP endpoint the
// otel no-op provider stays in place.
func New(opts Opts) error {
	if opts.Config.Otel.Endpoint == "" {
		opts.Logger.Info("Tracing disabled, no OTLP endpoint configured")
		return nil
	}

	exp, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(opts.Config.Otel.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(opts.Config.Otel.ServiceName),
		attribute.String("deployment.environment", opts.Config.App.Env),
	))
	if err != nil {
		return fmt.Errorf("failed to build otel resource: %w", err)
	}

	tp := trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			opts.Logger.Info("Flushing traces")
			return tp.Shutdown(ctx)
		},
	})
	opts.Logger.Info("Tracing enabled", "endpoint", opts.Config.Otel.Endpoint)
	return nil
}
