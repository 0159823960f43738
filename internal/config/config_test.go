package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coderi421/relstore/orm/vendor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		want    *Config
		wantErr string
	}{
		{
			name: "defaults",
			data: `
database:
  driver: sqlite3
  dsn: "file::memory:"
`,
			want: &Config{
				Database: Database{Driver: "sqlite3", DSN: "file::memory:", Vendor: vendor.SQLite3, Table: "player"},
				Log:      Log{Level: "info"},
			},
		},
		{
			name: "full",
			data: `
database:
  driver: pgx
  dsn: postgres://localhost/relstore
  table: public.player
log:
  level: debug
tracing:
  exporter: zipkin
  endpoint: http://localhost:9411/api/v2/spans
metrics:
  addr: ":2112"
`,
			want: &Config{
				Database: Database{Driver: "pgx", DSN: "postgres://localhost/relstore", Vendor: vendor.PostgreSQL, Table: "public.player"},
				Log:      Log{Level: "debug"},
				Tracing:  Tracing{Exporter: "zipkin", Endpoint: "http://localhost:9411/api/v2/spans"},
				Metrics:  Metrics{Addr: ":2112"},
			},
		},
		{
			name: "explicit vendor",
			data: `
database:
  driver: mssql
  dsn: sqlserver://sa@localhost
  vendor: sqlserver
`,
			want: &Config{
				Database: Database{Driver: "mssql", DSN: "sqlserver://sa@localhost", Vendor: vendor.SQLServer, Table: "player"},
				Log:      Log{Level: "info"},
			},
		},
		{
			name:    "no driver",
			data:    "database:\n  dsn: x\n",
			wantErr: "config: database.driver is required",
		},
		{
			name:    "no dsn",
			data:    "database:\n  driver: mysql\n",
			wantErr: "config: database.dsn is required",
		},
		{
			name:    "unsupported vendor",
			data:    "database:\n  driver: db2\n  dsn: x\n",
			wantErr: `config: database.vendor: orm: unsupported vendor: "db2"`,
		},
		{
			name:    "bad level",
			data:    "database:\n  driver: mysql\n  dsn: x\nlog:\n  level: loud\n",
			wantErr: `config: log.level: unrecognized level: "loud"`,
		},
		{
			name:    "tracing without endpoint",
			data:    "database:\n  driver: mysql\n  dsn: x\ntracing:\n  exporter: jaeger\n",
			wantErr: "config: tracing.endpoint is required for jaeger",
		},
		{
			name:    "unknown exporter",
			data:    "database:\n  driver: mysql\n  dsn: x\ntracing:\n  exporter: stdout\n",
			wantErr: `config: unknown tracing.exporter "stdout" (zipkin/jaeger)`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data))
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite3\n  dsn: relstore.db\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, vendor.SQLite3, cfg.Database.Vendor)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
