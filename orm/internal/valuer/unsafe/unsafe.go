package unsafe

import (
	"database/sql"
	"reflect"
	"unsafe"

	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/internal/valuer"
	"github.com/coderi421/relstore/orm/model"
)

type unsafeValue struct {
	addr unsafe.Pointer // 使用 unsafe Pointer 而不是 uintptr 是因为 gc 后 uintptr 会发生变化
	meta *model.Model
}

var _ valuer.Creator = NewUnsafeValue

func NewUnsafeValue(val any, meta *model.Model) valuer.Value {
	return unsafeValue{
		addr: reflect.ValueOf(val).UnsafePointer(),
		meta: meta,
	}
}

func (u unsafeValue) Field(name string) (any, error) {
	fd, ok := u.meta.FieldMap[name]
	if !ok {
		return nil, errs.NewErrUnknownField(name)
	}
	ptr := unsafe.Add(u.addr, fd.Offset)
	return reflect.NewAt(fd.Type, ptr).Elem().Interface(), nil
}

// SetColumns scans the current row straight into the field addresses.
func (u unsafeValue) SetColumns(rows *sql.Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	colValues := make([]any, len(columns))
	for i, column := range columns {
		cm, ok := u.meta.ColumnMap[column]
		if !ok {
			colValues[i] = valuer.Discard()
			continue
		}
		ptr := unsafe.Add(u.addr, cm.Offset)
		colValues[i] = reflect.NewAt(cm.Type, ptr).Interface()
	}
	return rows.Scan(colValues...)
}
