package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/coderi421/relstore/orm"
	"github.com/coderi421/relstore/orm/vendor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Player 的列名就是字段名
type Player struct {
	Id     uuid.UUID
	Name   string
	Season int64
	Score  float64
}

type runOptions struct {
	table   string
	count   int
	season  int64
	literal bool
	create  bool
}

// columnTypes 各个厂商下 Player 每一列的类型，顺序和字段顺序一致
var columnTypes = map[string][4]string{
	vendor.SQLServer:  {"NVARCHAR(36)", "NVARCHAR(64)", "BIGINT", "FLOAT"},
	vendor.MySQL:      {"VARCHAR(36)", "VARCHAR(64)", "BIGINT", "DOUBLE"},
	vendor.PostgreSQL: {"VARCHAR(36)", "VARCHAR(64)", "BIGINT", "DOUBLE PRECISION"},
	vendor.SQLite3:    {"TEXT", "TEXT", "INTEGER", "REAL"},
	vendor.Oracle:     {"VARCHAR2(36)", "VARCHAR2(64)", "NUMBER(19)", "BINARY_DOUBLE"},
}

func createTableSQL(p *vendor.Profile, table string) (string, error) {
	types, ok := columnTypes[p.ID()]
	if !ok {
		return "", fmt.Errorf("relstore: no column types for vendor %s", p.ID())
	}
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	switch p.ID() {
	case vendor.MySQL, vendor.PostgreSQL, vendor.SQLite3:
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(p.QuoteTable(table))
	sb.WriteString(" (")
	for i, col := range []string{"Id", "Name", "Season", "Score"} {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Quote(col))
		sb.WriteByte(' ')
		sb.WriteString(types[i])
		sb.WriteString(" NOT NULL")
		if i == 0 {
			sb.WriteString(" PRIMARY KEY")
		}
	}
	sb.WriteByte(')')
	if p.ID() == vendor.SQLServer {
		// SQL Server 没有 IF NOT EXISTS
		return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NULL %s", strings.ReplaceAll(table, "'", "''"), sb.String()), nil
	}
	return sb.String(), nil
}

func selectBySeasonSQL(p *vendor.Profile, table string) string {
	return "SELECT * FROM " + p.QuoteTable(table) + " WHERE " + p.Quote("Season") + " = " + p.Token("Season", 0)
}

func newPlayers(n int, season int64) []*Player {
	res := make([]*Player, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, &Player{
			Id:     uuid.New(),
			Name:   fmt.Sprintf("player-%d", i),
			Season: season,
			Score:  float64(rand.Intn(10000)) / 100,
		})
	}
	return res
}

func run(ctx context.Context, db *orm.DB, opts runOptions, logger *zap.Logger) error {
	p := db.Profile()
	if opts.create {
		ddl, err := createTableSQL(p, opts.table)
		if err != nil {
			return err
		}
		if err = orm.Execute(ctx, db, ddl).Err(); err != nil {
			return fmt.Errorf("relstore: create table: %w", err)
		}
	}

	players := newPlayers(opts.count, opts.season)
	i := orm.NewBulkInserter[Player](db).Table(opts.table).Values(players...).Shared("Season")
	if opts.literal {
		i = i.Literal()
	}
	affected, err := i.Exec(ctx).RowsAffected()
	if err != nil {
		return fmt.Errorf("relstore: bulk insert: %w", err)
	}
	logger.Info("批量插入完成", zap.Int64("affected", affected), zap.Bool("literal", opts.literal))

	got, err := orm.ReadWith[Player](ctx, db, selectBySeasonSQL(p, opts.table), orm.Params{"Season": opts.season})
	if err != nil {
		return fmt.Errorf("relstore: read back: %w", err)
	}
	logger.Info("读取完成", zap.Int("count", len(got)), zap.Int64("season", opts.season))
	if len(got) != len(players) {
		return fmt.Errorf("relstore: inserted %d players but read %d", len(players), len(got))
	}
	return nil
}
