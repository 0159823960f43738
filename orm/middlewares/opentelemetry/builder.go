package opentelemetry

import (
	"context"

	"github.com/coderi421/relstore/orm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/coderi421/relstore/orm/middlewares/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m MiddlewareBuilder) Build() orm.Middleware {
	if m.Tracer == nil {
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			spanName := qc.Type
			if qc.Table != "" {
				spanName = spanName + " " + qc.Table
			}
			ctx, span := m.Tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
			defer span.End()

			span.SetAttributes(
				attribute.String("db.system", qc.Vendor),
				attribute.String("db.operation", qc.Type),
			)
			if qc.Table != "" {
				span.SetAttributes(attribute.String("db.sql.table", qc.Table))
			}
			if q, err := qc.Query(); err == nil {
				span.SetAttributes(
					attribute.String("db.statement", q.SQL),
					attribute.Int("db.params", len(q.Params)),
				)
			}

			res := next(ctx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			}
			return res
		}
	}
}
