package orm

import (
	"context"

	"github.com/coderi421/relstore/orm/model"
)

const (
	TypeBulkInsert = "BULK INSERT"
	TypeExec       = "EXEC"
	TypeRead       = "READ"
)

// QueryContext 中间件的上下文。还没有执行 sql 前，有的中间件需要使用这些信息
type QueryContext struct {
	// Type 声明查询类型，即 BULK INSERT, EXEC 和 READ
	Type string
	// Table 批量插入的目标表，其它类型为空
	Table  string
	Vendor string

	// Builder 生成最终的 SQL 和参数，中间件应该使用 Query 而不是直接调用 Build
	Builder QueryBuilder
	// Model 是参与映射的结构体的元数据，EXEC 没有参数对象的时候为 nil
	Model *model.Model

	built bool
	q     *Query
	qErr  error
}

// Query builds the statement on first use. Middlewares and the final handler
// share the result, so the statement is built at most once per call.
func (qc *QueryContext) Query() (*Query, error) {
	if !qc.built {
		qc.q, qc.qErr = qc.Builder.Build()
		qc.built = true
	}
	return qc.q, qc.qErr
}

type QueryResult struct {
	// Result 在不同的查询里面，类型是不同的
	// READ 里面是 []*T，其它情况下是 sql.Result
	Result any
	Err    error
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult
