package orm

import "database/sql"

type Result struct {
	err error
	res sql.Result
}

// LastInsertId 对 database/sql 的 Result 做一层拦截
func (r Result) LastInsertId() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.res == nil {
		return 0, nil
	}
	return r.res.LastInsertId()
}

// RowsAffected returns the affected row count. A statement that never reached
// the database, such as an empty bulk insert, affected zero rows.
func (r Result) RowsAffected() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.res == nil {
		return 0, nil
	}
	return r.res.RowsAffected()
}

func (r Result) Err() error {
	return r.err
}
