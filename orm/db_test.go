package orm

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/relstore/orm/internal/errs"
	"github.com/coderi421/relstore/orm/model"
	"github.com/coderi421/relstore/orm/vendor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	testCases := []struct {
		name       string
		opts       []DBOption
		wantVendor string
		wantErr    error
	}{
		{
			name:       "sqlserver",
			opts:       []DBOption{DBWithVendor(vendor.SQLServer)},
			wantVendor: vendor.SQLServer,
		},
		{
			name:    "no vendor",
			wantErr: errs.NewErrUnsupportedVendor(""),
		},
		{
			name:    "unsupported vendor",
			opts:    []DBOption{DBWithVendor("db2")},
			wantErr: errs.NewErrUnsupportedVendor("db2"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := OpenDB(sqlDB, tc.opts...)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				assert.True(t, errors.Is(err, ErrUnsupportedVendor))
				return
			}
			assert.Equal(t, tc.wantVendor, db.Vendor())
			assert.Equal(t, tc.wantVendor, db.Profile().ID())
			assert.Same(t, db.profile, db.Profile())
		})
	}
}

func TestMustOpenDB(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	assert.Panics(t, func() {
		MustOpenDB(sqlDB, DBWithVendor("db2"))
	})
	assert.NotPanics(t, func() {
		MustOpenDB(sqlDB, DBWithVendor(vendor.MySQL))
	})
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("no-such-driver", "")
	assert.Error(t, err)
}

func TestDBWithProfiles(t *testing.T) {
	profiles := vendor.NewRegistry()
	first, _ := mockDB(t, vendor.Oracle, DBWithProfiles(profiles))
	second, _ := mockDB(t, vendor.Oracle, DBWithProfiles(profiles))
	assert.Same(t, first.profile, second.profile)
}

func TestDBWithRegistry(t *testing.T) {
	r := model.NewRegistry()
	_, err := r.Register(&User{}, model.WithColumnName("Name", "user_name"))
	require.NoError(t, err)

	db, mock := mockDB(t, vendor.SQLite3, DBWithRegistry(r))
	q, err := NewBulkInserter[User](db).Table("users").Values(&User{Id: 1, Name: "A"}).Literal().Build()
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("Id","user_name") SELECT 1,'A';`, q.SQL)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"Id", "user_name"}).AddRow(1, "A"))
	res, err := Read[User](context.Background(), db, "SELECT Id, user_name FROM users")
	require.NoError(t, err)
	assert.Equal(t, []*User{{Id: 1, Name: "A"}}, res)
}

func TestFields(t *testing.T) {
	db, _ := mockDB(t, vendor.SQLServer)
	testCases := []struct {
		name    string
		record  any
		nameMap map[string]string
		want    []ColumnValue
		wantErr error
	}{
		{
			name:   "declaration order",
			record: &Score{Player: "a", BatchId: 7, Points: 1.5},
			want: []ColumnValue{
				{Field: "Player", Column: "Player", Value: "a"},
				{Field: "BatchId", Column: "BatchId", Value: 7},
				{Field: "Points", Column: "Points", Value: 1.5},
			},
		},
		{
			name:    "name map",
			record:  &Score{Player: "a", BatchId: 7, Points: 1.5},
			nameMap: map[string]string{"BatchId": "batch_id"},
			want: []ColumnValue{
				{Field: "Player", Column: "Player", Value: "a"},
				{Field: "BatchId", Column: "batch_id", Value: 7},
				{Field: "Points", Column: "Points", Value: 1.5},
			},
		},
		{
			name:    "not a pointer",
			record:  Score{},
			wantErr: errs.ErrPointerOnly,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Fields(db, tc.record, tc.nameMap)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}
