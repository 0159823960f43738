package valuer

import (
	"database/sql"
	"reflect"

	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/model"
)

// reflectValue 基于反射的 Value
type reflectValue struct {
	val  reflect.Value
	meta *model.Model
}

var _ Creator = NewReflectValue

// NewReflectValue 输入 val 必须是一个指向结构体实例的指针，而不能是任何其它类型
func NewReflectValue(val any, meta *model.Model) Value {
	return reflectValue{
		val:  reflect.ValueOf(val).Elem(),
		meta: meta,
	}
}

func (r reflectValue) Field(name string) (any, error) {
	fd, ok := r.meta.FieldMap[name]
	if !ok {
		return nil, errs.NewErrUnknownField(name)
	}
	return r.val.Field(fd.Index).Interface(), nil
}

// SetColumns sets the values of the current row to the matching struct fields.
func (r reflectValue) SetColumns(rows *sql.Rows) error {
	columnNames, err := rows.Columns()
	if err != nil {
		return err
	}

	// colValues 和 colEleValues 实质上最终都指向同一个对象
	colValues := make([]any, len(columnNames))
	colEleValues := make([]reflect.Value, len(columnNames))
	for i, name := range columnNames {
		field, ok := r.meta.ColumnMap[name]
		if !ok {
			colValues[i] = Discard()
			continue
		}
		value := reflect.New(field.Type)
		colValues[i] = value.Interface()
		colEleValues[i] = value.Elem()
	}

	if err = rows.Scan(colValues...); err != nil {
		return err
	}

	for i, c := range columnNames {
		cm, ok := r.meta.ColumnMap[c]
		if !ok {
			continue
		}
		r.val.Field(cm.Index).Set(colEleValues[i])
	}
	return nil
}
