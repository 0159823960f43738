package recover

import (
	"context"
	"fmt"

	"github.com/coderi421/relstore/orm"
)

type MiddlewareBuilder struct {
	LogFunc func(qc *orm.QueryContext, err any)
}

// Build 把驱动或者其它中间件里的 panic 转换成错误返回
func (m MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) (res *orm.QueryResult) {
			defer func() {
				if err := recover(); err != nil {
					res = &orm.QueryResult{Err: fmt.Errorf("orm: panic during %s: %v", qc.Type, err)}
					// 万一 LogFunc 也 panic，那我们也无能为力了
					if m.LogFunc != nil {
						m.LogFunc(qc, err)
					}
				}
			}()
			return next(ctx, qc)
		}
	}
}
