package main

import (
	"context"

	"github.com/coderi421/relstore/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "relstore"

// initTracing 安装全局的 TracerProvider，没有配置 exporter 的时候什么都不做
func initTracing(ctx context.Context, c config.Tracing) (func(ctx context.Context) error, error) {
	var (
		exp sdktrace.SpanExporter
		err error
	)
	switch c.Exporter {
	case "zipkin":
		exp, err = zipkin.New(c.Endpoint)
	case "jaeger":
		exp, err = jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(c.Endpoint)))
	default:
		return func(ctx context.Context) error { return nil }, nil
	}
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
