package orm

import (
	"context"
)

// Executor 执行不返回数据的语句
type Executor interface {
	Exec(ctx context.Context) Result
}

// Query 是构造好的语句
type Query struct {
	SQL string
	// Args 交给 database/sql 的参数，已经按照厂商的占位符风格处理过
	Args []any
	// Params 语句中的参数，字面量模式下为空
	Params []Parameter
}

type QueryBuilder interface {
	Build() (*Query, error)
}
