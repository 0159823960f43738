package querylog

import (
	"context"

	"github.com/coderi421/relstore/orm"
	"go.uber.org/zap"
)

type MiddlewareBuilder struct {
	logFunc func(query string, args []any)
}

// NewBuilder 默认使用全局的 zap logger 输出 Debug 日志
func NewBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

// Logger 使用指定的 zap logger
func (m *MiddlewareBuilder) Logger(l *zap.Logger) *MiddlewareBuilder {
	m.logFunc = func(query string, args []any) {
		l.Debug("sql", zap.String("sql", query), zap.Any("args", args))
	}
	return m
}

// LogFunc 完全自定义输出方式
func (m *MiddlewareBuilder) LogFunc(fn func(query string, args []any)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	if m.logFunc == nil {
		m.Logger(zap.L())
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			q, err := qc.Query()
			if err != nil {
				// 构造失败交给后面处理，这里不记录
				return next(ctx, qc)
			}
			m.logFunc(q.SQL, q.Args)
			return next(ctx, qc)
		}
	}
}
