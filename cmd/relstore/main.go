// Command relstore bulk inserts a batch of generated players into a relational
// database and reads them back, exercising the orm package end to end.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	_ "github.com/coderi421/relstore/drivers"
	"github.com/coderi421/relstore/internal/config"
	"github.com/coderi421/relstore/orm"
	"github.com/coderi421/relstore/orm/middlewares/opentelemetry"
	"github.com/coderi421/relstore/orm/middlewares/prometheus"
	"github.com/coderi421/relstore/orm/middlewares/querylog"
	"github.com/coderi421/relstore/orm/middlewares/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "relstore.yaml", "path of the YAML config file")
	count := flag.Int("count", 100, "number of players to insert")
	season := flag.Int64("season", time.Now().Unix(), "season shared by every inserted player")
	literal := flag.Bool("literal", false, "embed values in the statement instead of binding parameters")
	create := flag.Bool("create", true, "create the player table before inserting")
	flag.Parse()

	// 配置加载之前只能先用默认的 production logger
	boot, _ := zap.NewProduction()
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		boot.Fatal("加载配置失败", zap.Error(err))
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		boot.Fatal("初始化日志失败", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()
	shutdown, err := initTracing(ctx, cfg.Tracing)
	if err != nil {
		logger.Fatal("初始化 tracing 失败", zap.Error(err))
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("关闭 tracing 失败", zap.Error(err))
		}
	}()

	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics 服务退出", zap.Error(err))
			}
		}()
	}

	db, err := orm.Open(cfg.Database.Driver, cfg.Database.DSN,
		orm.DBWithVendor(cfg.Database.Vendor),
		orm.DBWithMiddlewares(
			recover.MiddlewareBuilder{LogFunc: func(qc *orm.QueryContext, err any) {
				logger.Error("panic", zap.String("type", qc.Type), zap.Any("err", err))
			}}.Build(),
			querylog.NewBuilder().Logger(logger).Build(),
			prometheus.MiddlewareBuilder{
				Namespace: "relstore",
				Subsystem: "orm",
				Name:      "query_duration_us",
				Help:      "statement latency in microseconds",
			}.Build(),
			opentelemetry.MiddlewareBuilder{}.Build(),
		))
	if err != nil {
		logger.Fatal("打开数据库失败", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err = run(ctx, db, runOptions{
		table:   cfg.Database.Table,
		count:   *count,
		season:  *season,
		literal: *literal,
		create:  *create,
	}, logger); err != nil {
		logger.Error("执行失败", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(c config.Log) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = lvl
	return zc.Build()
}
