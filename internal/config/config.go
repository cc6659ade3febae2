package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		Driver     string `yaml:"driver"` // "postgres" or "sqlite"
		URL        string `yaml:"url"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Backtest struct {
		Ticker      string  `yaml:"ticker"`
		Interval    string  `yaml:"interval"`
		Start       string  `yaml:"start"` // YYYY-MM-DD
		End         string  `yaml:"end"`   // YYYY-MM-DD
		InitialCash float64 `yaml:"initial_cash"`
	} `yaml:"backtest"`
	Indicators struct {
		SMAShort   int     `yaml:"sma_short"`
		SMALong    int     `yaml:"sma_long"`
		RSIWindow  int     `yaml:"rsi_window"`
		MACDShort  int     `yaml:"macd_short"`
		MACDLong   int     `yaml:"macd_long"`
		MACDSignal int     `yaml:"macd_signal"`
		Overbought float64 `yaml:"overbought"`
	} `yaml:"indicators"`
	Report struct {
		Name          string `yaml:"name"`
		TrajectoryCSV string `yaml:"trajectory_csv"`
	} `yaml:"report"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// describe a complete run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("BACKTEST_TICKER"); v != "" {
		cfg.Backtest.Ticker = v
	}
	if v := os.Getenv("BACKTEST_INITIAL_CASH"); v != "" {
		if cash, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Backtest.InitialCash = cash
		}
	}

	// Defaults
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Backtest.Ticker == "" {
		cfg.Backtest.Ticker = "AAPL"
	}
	if cfg.Backtest.Interval == "" {
		cfg.Backtest.Interval = string(types.Day)
	}
	if cfg.Backtest.Start == "" {
		cfg.Backtest.Start = "2023-04-01"
	}
	if cfg.Backtest.End == "" {
		cfg.Backtest.End = "2024-04-30"
	}
	if cfg.Backtest.InitialCash == 0 {
		cfg.Backtest.InitialCash = 100000
	}
	if cfg.Indicators.SMAShort == 0 {
		cfg.Indicators.SMAShort = 20
	}
	if cfg.Indicators.SMALong == 0 {
		cfg.Indicators.SMALong = 50
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = 14
	}
	if cfg.Indicators.MACDShort == 0 {
		cfg.Indicators.MACDShort = 12
	}
	if cfg.Indicators.MACDLong == 0 {
		cfg.Indicators.MACDLong = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Indicators.Overbought == 0 {
		cfg.Indicators.Overbought = 70
	}
	if cfg.Report.Name == "" {
		cfg.Report.Name = "Trading Report"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and parseable.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("database.url is required for the postgres driver")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Backtest.InitialCash <= 0 {
		return fmt.Errorf("backtest.initial_cash must be positive")
	}
	if _, ok := types.ConvertInterval[c.Backtest.Interval]; !ok {
		return fmt.Errorf("backtest.interval %q is not supported", c.Backtest.Interval)
	}
	if _, err := c.StartTime(); err != nil {
		return fmt.Errorf("backtest.start: %w", err)
	}
	if _, err := c.EndTime(); err != nil {
		return fmt.Errorf("backtest.end: %w", err)
	}
	return nil
}

func (c *Config) Interval() types.Interval {
	return types.ConvertInterval[c.Backtest.Interval]
}

func (c *Config) StartTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.Backtest.Start)
}

func (c *Config) EndTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.Backtest.End)
}
