package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mehdibadjian/trading-bot/internal/config"
	"github.com/mehdibadjian/trading-bot/internal/engine"
	"github.com/mehdibadjian/trading-bot/internal/repository"
	"github.com/mehdibadjian/trading-bot/strategies/trendfollow"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "configs/config.yaml", "Path to the YAML config file")
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	eng, cleanup, err := buildEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := eng.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func buildEngine(cfg *config.Config) (*engine.Engine, func(), error) {
	start, _ := cfg.StartTime()
	end, _ := cfg.EndTime()

	feed := engine.NewDataFeedConfig(cfg.Backtest.Ticker, cfg.Interval(), start, end)
	indicators := engine.NewIndicatorConfig(
		cfg.Indicators.SMAShort,
		cfg.Indicators.SMALong,
		cfg.Indicators.RSIWindow,
		cfg.Indicators.MACDShort,
		cfg.Indicators.MACDLong,
		cfg.Indicators.MACDSignal,
	)
	portfolio := engine.NewPortfolioConfig(decimal.NewFromFloat(cfg.Backtest.InitialCash))
	reporting := engine.NewReportingConfig(cfg.Report.Name, cfg.Report.TrajectoryCSV)
	strat := trendfollow.NewWithOverbought(decimal.NewFromFloat(cfg.Indicators.Overbought))

	switch cfg.Database.Driver {
	case "sqlite":
		db, err := repository.NewSQLiteDatabase(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		eng := engine.NewEngine(db, feed, strat, indicators, portfolio, reporting)
		return eng, func() { db.Close() }, nil
	default:
		db, err := repository.NewDatabase(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		eng := engine.NewEngine(db, feed, strat, indicators, portfolio, reporting)
		return eng, func() { db.Close() }, nil
	}
}
