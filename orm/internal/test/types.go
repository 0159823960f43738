package test

import (
	"database/sql"

	"github.com/google/uuid"
)

// SimpleStruct 包含了常见的基本类型、指针和 sql.NullXXX，用来测试映射
type SimpleStruct struct {
	Id      uint64
	Bool    bool
	BoolPtr *bool

	Int    int
	IntPtr *int

	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64

	Uint8  uint8
	Uint32 uint32
	Uint64 uint64

	Float32    float32
	Float64    float64
	Float64Ptr *float64

	ByteArray []byte
	String    string

	NullStringPtr *sql.NullString
	NullInt64Ptr  *sql.NullInt64

	UUID uuid.UUID
}

// SimpleStructUUID 是 NewSimpleStruct 使用的固定 UUID
var SimpleStructUUID = uuid.MustParse("3f1c2f1e-8a7e-4a52-9b7e-2d5f1c0a9e11")

func NewSimpleStruct(id uint64) *SimpleStruct {
	return &SimpleStruct{
		Id:            id,
		Bool:          true,
		BoolPtr:       toPtr[bool](false),
		Int:           12,
		IntPtr:        toPtr[int](13),
		Int8:          8,
		Int16:         -16,
		Int32:         32,
		Int64:         -64,
		Uint8:         18,
		Uint32:        132,
		Uint64:        164,
		Float32:       3.2,
		Float64:       6.4,
		Float64Ptr:    toPtr[float64](-6.4),
		ByteArray:     []byte("hello"),
		String:        "world",
		NullStringPtr: &sql.NullString{String: "null string", Valid: true},
		NullInt64Ptr:  &sql.NullInt64{Int64: 64, Valid: true},
		UUID:          SimpleStructUUID,
	}
}

// SimpleStructRow 是 NewSimpleStruct 对应的一行数据库数据，key 是列名
func SimpleStructRow() map[string][]byte {
	return map[string][]byte{
		"Id":            []byte("1"),
		"Bool":          []byte("true"),
		"BoolPtr":       []byte("false"),
		"Int":           []byte("12"),
		"IntPtr":        []byte("13"),
		"Int8":          []byte("8"),
		"Int16":         []byte("-16"),
		"Int32":         []byte("32"),
		"Int64":         []byte("-64"),
		"Uint8":         []byte("18"),
		"Uint32":        []byte("132"),
		"Uint64":        []byte("164"),
		"Float32":       []byte("3.2"),
		"Float64":       []byte("6.4"),
		"Float64Ptr":    []byte("-6.4"),
		"ByteArray":     []byte("hello"),
		"String":        []byte("world"),
		"NullStringPtr": []byte("null string"),
		"NullInt64Ptr":  []byte("64"),
		"UUID":          []byte(SimpleStructUUID.String()),
	}
}

func toPtr[T any](t T) *T {
	return &t
}
