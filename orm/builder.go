package orm

import (
	"strings"

	"github.com/coderi421/relstore/orm/vendor"
)

// builder 拼接 SQL，同时收集参数
type builder struct {
	core
	sb     strings.Builder
	params []Parameter
	// refs 按照占位符在 SQL 中出现的顺序记录参数下标，匿名占位符需要它
	refs []int
}

func (b *builder) reset() {
	b.sb.Reset()
	b.params = nil
	b.refs = nil
}

func (b *builder) quote(name string) {
	b.profile.WriteQuoted(&b.sb, name)
}

// addParam 只登记参数，不写占位符
func (b *builder) addParam(name string, val any) int {
	if b.params == nil {
		b.params = make([]Parameter, 0, 8)
	}
	b.params = append(b.params, Parameter{Name: name, Value: val})
	return len(b.params) - 1
}

// writeParam 写入下标为 idx 的参数的占位符，同一个参数可以写多次
func (b *builder) writeParam(idx int) {
	b.sb.WriteString(b.profile.Token(b.params[idx].Name, idx))
	b.refs = append(b.refs, idx)
}

func (b *builder) writeLiteral(val any) error {
	lit, err := literal(b.profile, val)
	if err != nil {
		return err
	}
	b.sb.WriteString(lit)
	return nil
}

func (b *builder) query() *Query {
	q := &Query{
		SQL:    b.sb.String(),
		Params: b.params,
	}
	if b.profile.Placeholder() == vendor.Anonymous {
		q.Args = bindOccurrences(b.params, b.refs)
	} else {
		q.Args = Bind(b.profile.Placeholder(), b.params)
	}
	return q
}
