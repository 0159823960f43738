package orm

import (
	"context"
	"database/sql"
	"reflect"
	"sort"

	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/model"
)

// Execute runs a statement that returns no rows, typically INSERT, UPDATE, DELETE or DDL.
func Execute(ctx context.Context, sess Session, query string) Result {
	return execute(ctx, sess, query, nil)
}

// ExecuteWith binds params before running query. params is a Params map or a
// struct (or pointer to one) whose exported fields are bound under their Go field names.
func ExecuteWith(ctx context.Context, sess Session, query string, params any) Result {
	if isNil(params) {
		return Result{err: errs.ErrNilParameterObject}
	}
	return execute(ctx, sess, query, params)
}

func execute(ctx context.Context, sess Session, query string, params any) Result {
	c := sess.getCore()
	rq := &rawQuery{core: c, sql: query, params: params}
	meta, err := rq.model()
	if err != nil {
		return Result{err: err}
	}
	res := exec(ctx, sess, c, &QueryContext{
		Type:    TypeExec,
		Vendor:  c.profile.ID(),
		Builder: rq,
		Model:   meta,
	})
	return toResult(res)
}

// Read runs query and maps every row into a new T. Result columns are matched
// to T's column names exactly; unknown columns are ignored and unmatched fields
// keep their zero value.
func Read[T any](ctx context.Context, sess Session, query string) ([]*T, error) {
	return read[T](ctx, sess, query, nil)
}

// ReadWith is Read with parameters, bound the same way as ExecuteWith.
func ReadWith[T any](ctx context.Context, sess Session, query string, params any) ([]*T, error) {
	if isNil(params) {
		return nil, errs.ErrNilParameterObject
	}
	return read[T](ctx, sess, query, params)
}

func read[T any](ctx context.Context, sess Session, query string, params any) ([]*T, error) {
	c := sess.getCore()
	meta, err := c.r.Get(new(T))
	if err != nil {
		return nil, err
	}
	rq := &rawQuery{core: c, sql: query, params: params}
	// 参数对象的元数据不需要，这里先校验一次，避免进入中间件以后才失败
	if _, err = rq.model(); err != nil {
		return nil, err
	}

	var root Handler = func(ctx context.Context, qc *QueryContext) *QueryResult {
		q, err := qc.Query()
		if err != nil {
			return &QueryResult{Err: err}
		}
		rows, err := sess.queryContext(ctx, q.SQL, q.Args...)
		if err != nil {
			return &QueryResult{Err: err}
		}
		defer func() { _ = rows.Close() }()

		res := make([]*T, 0, 8)
		for rows.Next() {
			tp := new(T)
			if err = c.valCreator(tp, meta).SetColumns(rows); err != nil {
				return &QueryResult{Err: err}
			}
			res = append(res, tp)
		}
		return &QueryResult{Result: res, Err: rows.Err()}
	}

	for i := len(c.mdls) - 1; i >= 0; i-- {
		root = c.mdls[i](root)
	}
	qr := root(ctx, &QueryContext{
		Type:    TypeRead,
		Vendor:  c.profile.ID(),
		Builder: rq,
		Model:   meta,
	})
	if qr.Err != nil {
		return nil, qr.Err
	}
	res, _ := qr.Result.([]*T)
	return res, nil
}

// exec 组装中间件，最里层真正执行语句
func exec(ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	var root Handler = func(ctx context.Context, qc *QueryContext) *QueryResult {
		q, err := qc.Query()
		if err != nil {
			return &QueryResult{Err: err}
		}
		res, err := sess.execContext(ctx, q.SQL, q.Args...)
		return &QueryResult{Result: res, Err: err}
	}
	for i := len(c.mdls) - 1; i >= 0; i-- {
		root = c.mdls[i](root)
	}
	return root(ctx, qc)
}

func toResult(qr *QueryResult) Result {
	var sqlRes sql.Result
	if qr.Result != nil {
		sqlRes, _ = qr.Result.(sql.Result)
	}
	return Result{err: qr.Err, res: sqlRes}
}

// rawQuery 是用户自己写的语句，只负责绑定参数
type rawQuery struct {
	core
	sql    string
	params any
}

func (r *rawQuery) Build() (*Query, error) {
	ps, err := r.parameters()
	if err != nil {
		return nil, err
	}
	return &Query{
		SQL:    r.sql,
		Args:   Bind(r.profile.Placeholder(), ps),
		Params: ps,
	}, nil
}

// model returns the metadata of a struct parameter object, nil for Params and no params.
func (r *rawQuery) model() (*model.Model, error) {
	if r.params == nil {
		return nil, nil
	}
	switch r.params.(type) {
	case Params, map[string]any:
		return nil, nil
	}
	ptr, err := structPointer(r.params)
	if err != nil {
		return nil, err
	}
	return r.r.Get(ptr)
}

// parameters 参数名直接使用字段名，不经过列名映射
func (r *rawQuery) parameters() ([]Parameter, error) {
	switch ps := r.params.(type) {
	case nil:
		return nil, nil
	case Params:
		return sortedParams(ps), nil
	case map[string]any:
		return sortedParams(ps), nil
	}
	ptr, err := structPointer(r.params)
	if err != nil {
		return nil, err
	}
	_, fields, err := r.fields(ptr, nil)
	if err != nil {
		return nil, err
	}
	res := make([]Parameter, 0, len(fields))
	for _, f := range fields {
		res = append(res, Parameter{Name: f.Field, Value: f.Value})
	}
	return res, nil
}

func sortedParams(ps map[string]any) []Parameter {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]Parameter, 0, len(ps))
	for _, name := range names {
		res = append(res, Parameter{Name: name, Value: ps[name]})
	}
	return res
}

// structPointer 结构体本身会被复制一份，转成指针以后才能交给 valuer
func structPointer(val any) (any, error) {
	rv := reflect.ValueOf(val)
	switch {
	case rv.Kind() == reflect.Struct:
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		return ptr.Interface(), nil
	case rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Struct:
		return val, nil
	}
	return nil, errs.NewErrUnsupportedParameterObject(val)
}
