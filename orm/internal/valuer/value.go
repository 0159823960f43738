package valuer

import (
	"database/sql"

	"github.com/coderi421/relstore/orm/model"
)

// Value 是对结构体实例的抽象，读写都通过它完成
type Value interface {
	// Field 返回 Go 字段名为 name 的字段的值
	Field(name string) (any, error)
	// SetColumns 把 rows 当前行的数据写入结构体。
	// 列名和字段列名精确匹配（区分大小写），匹配不上的列直接忽略
	SetColumns(rows *sql.Rows) error
}

// Creator 本质上也可以看所是 factory 模式，极其简单的 factory 模式
type Creator func(val any, meta *model.Model) Value

// Discard 用来接收结构体中没有对应字段的列
func Discard() any {
	return new(any)
}
