package orm

import (
	"github.com/coderi421/relstore/orm/model"
)

// ColumnValue is one mapped field of a record.
type ColumnValue struct {
	// Field 是 Go 字段名
	Field  string
	Column string
	Value  any
}

// Fields lists the fields of record in declaration order, which is the same for
// every record of the same type. nameMap renames columns, keyed by Go field name.
func Fields(sess Session, record any, nameMap map[string]string) ([]ColumnValue, error) {
	_, res, err := sess.getCore().fields(record, nameMap)
	return res, err
}

func (c core) fields(record any, nameMap map[string]string) (*model.Model, []ColumnValue, error) {
	meta, err := c.r.Get(record)
	if err != nil {
		return nil, nil, err
	}
	val := c.valCreator(record, meta)
	res := make([]ColumnValue, 0, len(meta.Fields))
	for _, fd := range meta.Fields {
		v, err := val.Field(fd.GoName)
		if err != nil {
			return nil, nil, err
		}
		res = append(res, ColumnValue{
			Field:  fd.GoName,
			Column: fd.ColumnName(nameMap),
			Value:  v,
		})
	}
	return meta, res, nil
}
