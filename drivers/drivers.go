// Package drivers registers the database/sql drivers of every supported vendor.
// Import it for its side effects:
//
//	import _ "github.com/coderi421/relstore/drivers"
//
// Registered driver names and the vendor they map to:
//
//	sqlserver, mssql -> sqlserver
//	mysql            -> mysql
//	pgx              -> postgres
//	sqlite3          -> sqlite3
//	oracle           -> oracle
package drivers

import (
	_ "github.com/denisenkom/go-mssqldb" // MS SQL Server driver
	_ "github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"      // SQLite driver
	_ "github.com/sijms/go-ora/v2"       // Oracle driver
)
