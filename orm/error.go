package orm

import "github.com/coderi421/relstore/orm/internal/errs"

// 将内部的 sentinel error 暴露出去
var (
	// ErrInvalidArgument 是所有参数错误的分类，使用 errors.Is 判断
	ErrInvalidArgument = errs.ErrInvalidArgument
	// ErrUnsupportedVendor 代表数据库厂商不在支持的范围内
	ErrUnsupportedVendor = errs.ErrUnsupportedVendor

	ErrBlankTableName     = errs.ErrBlankTableName
	ErrNilRecords         = errs.ErrNilRecords
	ErrNilParameterObject = errs.ErrNilParameterObject
	ErrNoColumns          = errs.ErrNoColumns
	// ErrEmptyBatch 由 BulkInserter.Build 返回，Exec 遇到空批次直接返回影响 0 行
	ErrEmptyBatch  = errs.ErrEmptyBatch
	ErrPointerOnly = errs.ErrPointerOnly
)
