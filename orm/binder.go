package orm

import (
	"database/sql"
	"database/sql/driver"
	"reflect"

	"github.com/coderi421/relstore/orm/vendor"
)

// Parameter is a named statement parameter.
type Parameter struct {
	Name  string
	Value any
}

type dbNull struct{}

func (dbNull) Value() (driver.Value, error) {
	return nil, nil
}

// Null 是数据库 NULL 的哨兵值，缺失的参数值统一替换成它
var Null driver.Valuer = dbNull{}

// Bind converts params to database/sql arguments. Named placeholder styles get
// sql.NamedArg values, which database/sql always passes as input parameters;
// the other styles get plain values in parameter order.
func Bind(style vendor.PlaceholderStyle, params []Parameter) []any {
	if len(params) == 0 {
		return nil
	}
	args := make([]any, 0, len(params))
	for _, p := range params {
		v := bindValue(p.Value)
		if style == vendor.Named {
			args = append(args, sql.Named(p.Name, v))
			continue
		}
		args = append(args, v)
	}
	return args
}

// bindOccurrences 用于匿名占位符 ?，同一个参数出现几次就要传几次
func bindOccurrences(params []Parameter, refs []int) []any {
	if len(refs) == 0 {
		return nil
	}
	args := make([]any, 0, len(refs))
	for _, idx := range refs {
		args = append(args, bindValue(params[idx].Value))
	}
	return args
}

func bindValue(val any) any {
	if isNil(val) {
		return Null
	}
	return val
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
