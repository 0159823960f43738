package model

import "reflect"

// Option is a function type that modifies a Model.
type Option func(model *Model) error

// Model 结构体映射 db 后的结构，每个类型只解析一次
type Model struct {
	Type reflect.Type
	// Fields 按结构体声明顺序排列，同一个类型每次拿到的顺序都一样
	Fields    []*Field
	FieldMap  map[string]*Field // 结构体属性名为 key  ItemId
	ColumnMap map[string]*Field // 列名为 key
}

// Field 字段相关的属性
type Field struct {
	ColName string       // 数据库中的列名
	GoName  string       // go struct 中的名字
	Type    reflect.Type // 转换成 reflect.Value 的时候需要知道类型
	Index   int
	// Offset 相对于对象起始地址的字段偏移量
	Offset uintptr
}

// ColumnName returns the column name of f after applying nameMap.
// nameMap is keyed by Go field name; fields absent from it keep their own column name.
func (f *Field) ColumnName(nameMap map[string]string) string {
	if col, ok := nameMap[f.GoName]; ok {
		return col
	}
	return f.ColName
}

// 我们支持的全部标签上的 key 都放在这里
// 方便用户查找，和我们后期维护
const (
	tagKeyColumn = "column"
	tagORMName   = "orm"
)
