package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/coderi421/relstore/orm/internal/errs"
)

type Registry interface {
	Get(val any) (*Model, error)
	Register(val any, opts ...Option) (*Model, error)
}

// reflect.Type 作为 key 可以解决不同包里面同名类型冲突的问题
type registry struct {
	models sync.Map
}

func NewRegistry() Registry {
	return &registry{}
}

// Get fetches the model associated with the type of val, parsing it on first use.
func (r *registry) Get(val any) (*Model, error) {
	typ := reflect.TypeOf(val)
	m, ok := r.models.Load(typ)
	if ok {
		return m.(*Model), nil
	}
	m, err := r.parseModel(val)
	if err != nil {
		return nil, err
	}
	// 并发解析同一个类型的时候，只有第一个存进去的会被使用
	m, _ = r.models.LoadOrStore(typ, m)
	return m.(*Model), nil
}

// Register parses val, applies opts and replaces whatever model was cached for its type.
func (r *registry) Register(val any, opts ...Option) (*Model, error) {
	m, err := r.parseModel(val)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err = opt(m); err != nil {
			return nil, err
		}
	}
	// 修改列名以后 ColumnMap 需要重建
	m.ColumnMap = make(map[string]*Field, len(m.Fields))
	for _, f := range m.Fields {
		m.ColumnMap[f.ColName] = f
	}
	r.models.Store(reflect.TypeOf(val), m)
	return m, nil
}

// parseModel only accepts a one-level pointer to a struct, e.g. *User.
// orm:"column=first_name"
func (r *registry) parseModel(val any) (*Model, error) {
	typ := reflect.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return nil, errs.ErrPointerOnly
	}
	typ = typ.Elem()

	numField := typ.NumField()
	fields := make([]*Field, 0, numField)
	fds := make(map[string]*Field, numField)
	colMap := make(map[string]*Field, numField)
	for i := 0; i < numField; i++ {
		fdStruct := typ.Field(i)
		// 非导出字段不属于记录的形状
		if !fdStruct.IsExported() {
			continue
		}
		tags, err := r.parseTag(fdStruct.Tag)
		if err != nil {
			return nil, err
		}
		colName := tags[tagKeyColumn]
		if colName == "" {
			colName = fdStruct.Name
		}
		f := &Field{
			ColName: colName,
			GoName:  fdStruct.Name,
			Type:    fdStruct.Type,
			Index:   i,
			Offset:  fdStruct.Offset,
		}
		fields = append(fields, f)
		fds[fdStruct.Name] = f
		colMap[colName] = f
	}

	return &Model{
		Type:      typ,
		Fields:    fields,
		FieldMap:  fds,
		ColumnMap: colMap,
	}, nil
}

// parseTag returns an empty map rather than nil so callers never check for nil.
func (r *registry) parseTag(tag reflect.StructTag) (map[string]string, error) {
	ormTag := tag.Get(tagORMName)
	if ormTag == "" {
		return map[string]string{}, nil
	}
	res := make(map[string]string, 1)
	pairs := strings.Split(ormTag, ",")
	for _, pair := range pairs {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, errs.NewErrInvalidTagContent(pair)
		}
		res[kv[0]] = kv[1]
	}
	return res, nil
}

// WithColumnName sets the column name of one field.
func WithColumnName(field, columnName string) Option {
	return func(model *Model) error {
		fd, ok := model.FieldMap[field]
		if !ok {
			return errs.NewErrUnknownField(field)
		}
		fd.ColName = columnName
		return nil
	}
}
