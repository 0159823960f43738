package orm

import (
	"context"
	"database/sql"

	"github.com/coderi421/relstore/orm/internal/valuer"
	"github.com/coderi421/relstore/orm/internal/valuer/unsafe"
	"github.com/coderi421/relstore/orm/model"
	"github.com/coderi421/relstore/orm/vendor"
)

type DBOption func(*DB)

// DB 是对 sql.DB 的装饰，同时持有方言、元数据注册中心和中间件
type DB struct {
	core
	db       *sql.DB
	vendorID string
	profiles *vendor.Registry
}

// Open opens a database with database/sql. The vendor id defaults to the one
// derived from driverName, DBWithVendor overrides it.
func Open(driverName string, dsn string, opts ...DBOption) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	opts = append([]DBOption{DBWithVendor(vendor.FromDriver(driverName))}, opts...)
	res, err := OpenDB(db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return res, nil
}

// OpenDB wraps an existing *sql.DB. It fails fast when the vendor is not supported.
func OpenDB(db *sql.DB, opts ...DBOption) (*DB, error) {
	res := &DB{
		core: core{
			r:          model.NewRegistry(),
			valCreator: unsafe.NewUnsafeValue,
		},
		db:       db,
		profiles: vendor.NewRegistry(),
	}
	for _, opt := range opts {
		opt(res)
	}

	p, err := res.profiles.Profile(res.vendorID)
	if err != nil {
		return nil, err
	}
	res.profile = p
	return res, nil
}

// MustOpenDB creates a new DB and panics on error.
func MustOpenDB(db *sql.DB, opts ...DBOption) *DB {
	res, err := OpenDB(db, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

func DBWithVendor(id string) DBOption {
	return func(db *DB) {
		db.vendorID = id
	}
}

// DBWithProfiles shares one vendor profile registry between several DBs.
func DBWithProfiles(r *vendor.Registry) DBOption {
	return func(db *DB) {
		db.profiles = r
	}
}

func DBWithRegistry(r model.Registry) DBOption {
	return func(db *DB) {
		db.r = r
	}
}

// DBUseReflect 使用反射读写字段，默认是 unsafe
func DBUseReflect() DBOption {
	return func(db *DB) {
		db.valCreator = valuer.NewReflectValue
	}
}

func DBWithMiddlewares(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = mdls
	}
}

// Vendor returns the vendor id the DB generates SQL for.
func (db *DB) Vendor() string {
	return db.vendorID
}

// Profile returns the vendor profile shared by everything built on this DB.
func (db *DB) Profile() *vendor.Profile {
	return db.profile
}

// BeginTx 开启事务，事务同样是一个 Session
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := db.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: db}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) getCore() core {
	return db.core
}

func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
