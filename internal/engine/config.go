package engine

import (
	"time"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

type DataFeedConfig struct {
	ticker   string
	interval types.Interval
	start    time.Time
	end      time.Time
}

func NewDataFeedConfig(ticker string, interval types.Interval, start, end time.Time) *DataFeedConfig {
	return &DataFeedConfig{
		ticker:   ticker,
		interval: interval,
		start:    start,
		end:      end,
	}
}

type IndicatorConfig struct {
	smaShort   int
	smaLong    int
	rsiWindow  int
	macdShort  int
	macdLong   int
	macdSignal int
}

func NewIndicatorConfig(smaShort, smaLong, rsiWindow, macdShort, macdLong, macdSignal int) *IndicatorConfig {
	return &IndicatorConfig{
		smaShort:   smaShort,
		smaLong:    smaLong,
		rsiWindow:  rsiWindow,
		macdShort:  macdShort,
		macdLong:   macdLong,
		macdSignal: macdSignal,
	}
}

// DefaultIndicatorConfig returns the standard SMA(20/50), RSI(14),
// MACD(12,26,9) parameter set.
func DefaultIndicatorConfig() *IndicatorConfig {
	return NewIndicatorConfig(20, 50, 14, 12, 26, 9)
}

type PortfolioConfig struct {
	initialCash decimal.Decimal
}

func NewPortfolioConfig(initialCash decimal.Decimal) *PortfolioConfig {
	return &PortfolioConfig{
		initialCash: initialCash,
	}
}

type ReportingConfig struct {
	reportName string
	filePath   string
}

// NewReportingConfig configures the end-of-run report. filePath may be empty
// to skip the trajectory CSV export.
func NewReportingConfig(reportName string, filePath string) *ReportingConfig {
	return &ReportingConfig{
		reportName: reportName,
		filePath:   filePath,
	}
}
