package orm

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/model"
)

// rowParamPrefix 是逐行参数的名字前缀，p0、p1、p2 ... 在整条语句里连续递增
const rowParamPrefix = "p"

// BulkInserter inserts many rows with one statement of the form
//
//	INSERT INTO t (c1,c2) SELECT v1,v2 UNION ALL SELECT v3,v4;
//
// Every record has the shape of T, so all rows share the same column list.
type BulkInserter[T any] struct {
	builder
	sess Session

	table     string
	values    []*T
	valuesSet bool
	nameMap   map[string]string
	// shared 里面是 Go 字段名，这些列只取第一条记录的值，并且只绑定一次
	shared  []string
	literal bool
}

// NewBulkInserter
//
//	@Description: 创建批量插入，sess 可以是 DB 也可以是 Tx
//	@param sess
//	@return *BulkInserter[T]
func NewBulkInserter[T any](sess Session) *BulkInserter[T] {
	return &BulkInserter[T]{
		builder: builder{core: sess.getCore()},
		sess:    sess,
	}
}

// Table
//
//	@Description: 目标表名，按照 . 拆分以后逐段加引号，例如 dbo.Users
//	@receiver i
//	@param name
//	@return *BulkInserter[T]
func (i *BulkInserter[T]) Table(name string) *BulkInserter[T] {
	i.table = name
	return i
}

// Values
//
//	@Description: 将插入数据库中的数据。不传参数是空批次，从来不调用则是非法参数
//	@receiver i
//	@param vals
//	@return *BulkInserter[T]
func (i *BulkInserter[T]) Values(vals ...*T) *BulkInserter[T] {
	i.values = vals
	i.valuesSet = true
	return i
}

// NameMap
//
//	@Description: 字段名到列名的映射，key 是 Go 字段名
//	@receiver i
//	@param m
//	@return *BulkInserter[T]
func (i *BulkInserter[T]) NameMap(m map[string]string) *BulkInserter[T] {
	i.nameMap = m
	return i
}

// Shared
//
//	@Description: 所有记录取值相同的字段，只读取第一条记录的值，并且只绑定一次
//	@receiver i
//	@param fields Go 字段名
//	@return *BulkInserter[T]
func (i *BulkInserter[T]) Shared(fields ...string) *BulkInserter[T] {
	i.shared = fields
	return i
}

// Literal
//
//	@Description: 值直接写进 SQL 里面，不再使用参数
//	@receiver i
//	@return *BulkInserter[T]
func (i *BulkInserter[T]) Literal() *BulkInserter[T] {
	i.literal = true
	return i
}

func (i *BulkInserter[T]) validate() error {
	if strings.TrimSpace(i.table) == "" {
		return errs.ErrBlankTableName
	}
	if !i.valuesSet {
		return errs.ErrNilRecords
	}
	for idx, v := range i.values {
		if v == nil {
			return errs.NewErrNilRecord(idx)
		}
	}
	if len(i.values) == 0 {
		return errs.ErrEmptyBatch
	}
	return nil
}

// Build 可以重复调用，每次都会重新拼接
func (i *BulkInserter[T]) Build() (*Query, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}
	i.reset()

	meta, first, err := i.fields(i.values[0], i.nameMap)
	if err != nil {
		return nil, err
	}
	if len(meta.Fields) == 0 {
		return nil, errs.ErrNoColumns
	}
	sharedPos, rowPos, err := i.partition(meta)
	if err != nil {
		return nil, err
	}

	i.sb.WriteString("INSERT INTO ")
	i.sb.WriteString(i.profile.QuoteTable(i.table))
	i.sb.WriteString(" (")
	// 共享列排在前面，这样每个 SELECT 中值的顺序和列的顺序一致
	seen := make(map[string]struct{}, len(first))
	for idx, pos := range append(append(make([]int, 0, len(first)), sharedPos...), rowPos...) {
		col := first[pos].Column
		if _, ok := seen[col]; ok {
			return nil, errs.NewErrDuplicateColumn(col)
		}
		seen[col] = struct{}{}
		if idx > 0 {
			i.sb.WriteByte(',')
		}
		i.quote(col)
	}
	i.sb.WriteString(") SELECT ")

	shared, err := i.buildShared(meta, first, sharedPos)
	if err != nil {
		return nil, err
	}

	paramCnt := 0
	for rIdx, val := range i.values {
		row := first
		if rIdx > 0 {
			if _, row, err = i.fields(val, i.nameMap); err != nil {
				return nil, err
			}
			i.sb.WriteString(" UNION ALL SELECT ")
		}
		for sIdx, s := range shared {
			if sIdx > 0 {
				i.sb.WriteByte(',')
			}
			if i.literal {
				i.sb.WriteString(s.lit)
				continue
			}
			i.writeParam(s.param)
			if rIdx == 0 {
				i.sb.WriteString(s.cast)
			}
		}
		for cIdx, pos := range rowPos {
			if cIdx > 0 || len(shared) > 0 {
				i.sb.WriteByte(',')
			}
			if i.literal {
				if err = i.writeLiteral(row[pos].Value); err != nil {
					return nil, err
				}
				continue
			}
			i.writeParam(i.addParam(rowParamPrefix+strconv.Itoa(paramCnt), row[pos].Value))
			paramCnt++
			// PostgreSQL 按照第一个 SELECT 推断 UNION 每一列的类型，参数没有类型就会被当成 text
			if rIdx == 0 {
				i.sb.WriteString(i.profile.Cast(meta.Fields[pos].Type))
			}
		}
		// Oracle 之类的方言，除了第一个 SELECT 以外都要加上 FROM DUAL
		if rIdx > 0 && i.profile.RowTerminalRequired() {
			i.sb.WriteString(i.profile.RowTerminal())
		}
	}
	i.sb.WriteByte(';')
	return i.query(), nil
}

// partition 把字段分成共享列和逐行列，返回的是字段在 meta.Fields 中的下标
func (i *BulkInserter[T]) partition(meta *model.Model) ([]int, []int, error) {
	if len(i.shared) == 0 {
		rowPos := make([]int, len(meta.Fields))
		for idx := range meta.Fields {
			rowPos[idx] = idx
		}
		return nil, rowPos, nil
	}
	sharedSet := make(map[string]struct{}, len(i.shared))
	for _, name := range i.shared {
		if _, ok := meta.FieldMap[name]; !ok {
			return nil, nil, errs.NewErrUnknownField(name)
		}
		sharedSet[name] = struct{}{}
	}
	sharedPos := make([]int, 0, len(sharedSet))
	rowPos := make([]int, 0, len(meta.Fields)-len(sharedSet))
	for idx, fd := range meta.Fields {
		if _, ok := sharedSet[fd.GoName]; ok {
			sharedPos = append(sharedPos, idx)
			continue
		}
		rowPos = append(rowPos, idx)
	}
	return sharedPos, rowPos, nil
}

type sharedValue struct {
	param int
	cast  string
	lit   string
}

// buildShared 共享列的参数以映射后的列名命名，没有映射的时候就是字段本身的列名
func (i *BulkInserter[T]) buildShared(meta *model.Model, first []ColumnValue, sharedPos []int) ([]sharedValue, error) {
	res := make([]sharedValue, 0, len(sharedPos))
	for _, pos := range sharedPos {
		cv := first[pos]
		if i.literal {
			lit, err := literal(i.profile, cv.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, sharedValue{lit: lit})
			continue
		}
		if !validSharedParamName(cv.Column) {
			return nil, errs.NewErrInvalidParameterName(cv.Column)
		}
		res = append(res, sharedValue{
			param: i.addParam(cv.Column, cv.Value),
			cast:  i.profile.Cast(meta.Fields[pos].Type),
		})
	}
	return res, nil
}

// validSharedParamName 共享参数名必须是普通标识符，并且不能和 p0、p1 这种逐行参数重名
func validSharedParamName(name string) bool {
	if name == "" {
		return false
	}
	for idx, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && idx > 0:
		default:
			return false
		}
	}
	// SQL Server 的参数名不区分大小写，@P0 和 @p0 是同一个参数
	if rest, ok := strings.CutPrefix(strings.ToLower(name), rowParamPrefix); ok && rest != "" {
		if _, err := strconv.ParseUint(rest, 10, 64); err == nil {
			return false
		}
	}
	return true
}

// Exec runs the statement. An empty batch never reaches the database and
// reports zero affected rows.
func (i *BulkInserter[T]) Exec(ctx context.Context) Result {
	if err := i.validate(); err != nil {
		if errors.Is(err, errs.ErrEmptyBatch) {
			return Result{}
		}
		return Result{err: err}
	}
	meta, err := i.r.Get(i.values[0])
	if err != nil {
		return Result{err: err}
	}
	res := exec(ctx, i.sess, i.core, &QueryContext{
		Type:    TypeBulkInsert,
		Table:   i.table,
		Vendor:  i.profile.ID(),
		Builder: i,
		Model:   meta,
	})
	return toResult(res)
}
