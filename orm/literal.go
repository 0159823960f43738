package orm

import (
	"database/sql/driver"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/vendor"
)

// literal renders val as SQL text. strconv never consults the process locale,
// so numbers always use '.' as the decimal separator.
func literal(p *vendor.Profile, val any) (string, error) {
	if isNil(val) {
		return "NULL", nil
	}
	// uuid.UUID、sql.NullString 之类的先转成驱动能识别的值
	if vr, ok := val.(driver.Valuer); ok {
		v, err := vr.Value()
		if err != nil {
			return "", err
		}
		if v == nil {
			return "NULL", nil
		}
		val = v
	}

	switch v := val.(type) {
	case string:
		return p.StringLiteral(v), nil
	case []byte:
		return p.BinaryLiteral(v), nil
	case bool:
		return p.BoolLiteral(v), nil
	case time.Time:
		return p.TimeLiteral(v), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Ptr:
		return literal(p, rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// SQL 里面没有 NaN 和 Inf 的字面量
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", errs.NewErrUnsupportedLiteral(val)
		}
		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), nil
	case reflect.String:
		return p.StringLiteral(rv.String()), nil
	case reflect.Bool:
		return p.BoolLiteral(rv.Bool()), nil
	}
	return "", errs.NewErrUnsupportedLiteral(val)
}
