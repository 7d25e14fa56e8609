// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
)

const tracerName = "github.com/isambard-sc/brics-auth-service"

type Config struct {
	Enabled bool

	OtelGRPCEndpoint string
	OtelHTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Enabled:          enabled,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
	}
}

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(config)
	if err != nil {
		config.Logger.Errorf("tracing disabled, exporter setup failed: %s", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceName("brics-auth-service"),
			),
		),
	)
	otel.SetTracerProvider(provider)

	t.tracer = provider.Tracer(tracerName)
	return t
}

func newExporter(config *Config) (*otlptrace.Exporter, error) {
	ctx := context.Background()

	if config.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(config.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(config.OtelHTTPEndpoint),
		otlptracehttp.WithInsecure(),
	)
}

// NewNoopTracer returns a tracer that records nothing, used in tests.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer(tracerName),
		logger: logging.NewNoopLogger(),
	}
}
