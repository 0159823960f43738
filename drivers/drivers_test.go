package drivers

import (
	"database/sql"
	"testing"

	"github.com/coderi421/relstore/orm/vendor"
	"github.com/stretchr/testify/assert"
)

func TestRegistered(t *testing.T) {
	registered := make(map[string]struct{})
	for _, name := range sql.Drivers() {
		registered[name] = struct{}{}
	}

	r := vendor.NewRegistry()
	for _, name := range []string{"sqlserver", "mssql", "mysql", "pgx", "sqlite3", "oracle"} {
		_, ok := registered[name]
		assert.True(t, ok, name)
		// 每个驱动名都能找到对应的方言
		_, err := r.Profile(vendor.FromDriver(name))
		assert.NoError(t, err, name)
	}
}
