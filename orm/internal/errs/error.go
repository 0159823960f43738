package errs

import (
	"errors"
	"fmt"
)

// 分类错误，调用方通过 errors.Is 判断错误属于哪一类
var (
	// ErrInvalidArgument 调用参数非法，此时还没有构造任何 SQL，也没有访问数据库
	ErrInvalidArgument = errors.New("orm: invalid argument")
	// ErrUnsupportedVendor 不支持的数据库厂商
	ErrUnsupportedVendor = errors.New("orm: unsupported vendor")
)

var (
	ErrPointerOnly = errors.New("orm: only a pointer to a struct is supported, e.g. *User")

	ErrBlankTableName     = fmt.Errorf("%w: table name must be a legal SQL table name", ErrInvalidArgument)
	ErrNilRecords         = fmt.Errorf("%w: records must not be nil", ErrInvalidArgument)
	ErrNilParameterObject = fmt.Errorf("%w: parameter object must not be nil", ErrInvalidArgument)
	ErrNoColumns          = fmt.Errorf("%w: record type has no exported fields", ErrInvalidArgument)

	// ErrEmptyBatch 批量插入时没有任何数据
	ErrEmptyBatch = errors.New("orm: bulk insert has no rows")
)

func NewErrNilRecord(idx int) error {
	return fmt.Errorf("%w: record at index %d is nil", ErrInvalidArgument, idx)
}

func NewErrInvalidParameterName(name string) error {
	return fmt.Errorf("%w: %q is not usable as a parameter name", ErrInvalidArgument, name)
}

func NewErrUnsupportedVendor(id string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedVendor, id)
}

func NewErrUnknownField(name string) error {
	return fmt.Errorf("orm: unknown field %s", name)
}

func NewErrDuplicateColumn(col string) error {
	return fmt.Errorf("orm: column %s is mapped more than once", col)
}

func NewErrInvalidTagContent(pair string) error {
	return fmt.Errorf("orm: invalid tag content %s", pair)
}

func NewErrUnsupportedLiteral(val any) error {
	return fmt.Errorf("orm: cannot render %T as a SQL literal", val)
}

func NewErrUnsupportedParameterObject(val any) error {
	return fmt.Errorf("%w: unsupported parameter object %T", ErrInvalidArgument, val)
}
