package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/coderi421/relstore/orm/vendor"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config 是 relstore 命令行工具的配置
type Config struct {
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Tracing  Tracing  `yaml:"tracing"`
	Metrics  Metrics  `yaml:"metrics"`
}

type Database struct {
	// Driver 是 database/sql 注册的驱动名
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// Vendor 为空的时候根据 Driver 推断
	Vendor string `yaml:"vendor"`
	Table  string `yaml:"table"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Tracing struct {
	// Exporter 可选 zipkin、jaeger，为空表示不上报
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
}

type Metrics struct {
	// Addr 为空表示不暴露 /metrics
	Addr string `yaml:"addr"`
}

// Load 读取并校验 YAML 配置
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %q: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Vendor == "" {
		c.Database.Vendor = vendor.FromDriver(c.Database.Driver)
	}
	if c.Database.Table == "" {
		c.Database.Table = "player"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.Database.Driver == "" {
		return errors.New("config: database.driver is required")
	}
	if c.Database.DSN == "" {
		return errors.New("config: database.dsn is required")
	}
	if err := vendor.Validate(c.Database.Vendor); err != nil {
		return fmt.Errorf("config: database.vendor: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Tracing.Exporter {
	case "":
	case "zipkin", "jaeger":
		if c.Tracing.Endpoint == "" {
			return fmt.Errorf("config: tracing.endpoint is required for %s", c.Tracing.Exporter)
		}
	default:
		return fmt.Errorf("config: unknown tracing.exporter %q (zipkin/jaeger)", c.Tracing.Exporter)
	}
	return nil
}
