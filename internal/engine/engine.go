package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/schollz/progressbar/v3"
)

type dataStore interface {
	GetAssetByTicker(ctx context.Context, ticker string) (*types.Asset, error)
	GetCandles(ctx context.Context, assetId int, interval types.Interval, start, end time.Time) ([]types.Candle, error)
}

// Engine runs the full evaluation pipeline over one historical series:
// candles -> indicators -> signals -> portfolio trajectory -> report.
// Each stage consumes the previous stage's complete output; nothing is
// streamed and no stage mutates its input.
type Engine struct {
	db              dataStore
	feed            *DataFeedConfig
	strategy        Strategy
	indicatorConfig *IndicatorConfig
	portfolioConfig *PortfolioConfig
	reportingConfig *ReportingConfig
}

func NewEngine(
	db dataStore,
	feed *DataFeedConfig,
	strat Strategy,
	indicatorConfig *IndicatorConfig,
	portfolioConfig *PortfolioConfig,
	reportingConfig *ReportingConfig,
) *Engine {
	return &Engine{
		db:              db,
		feed:            feed,
		strategy:        strat,
		indicatorConfig: indicatorConfig,
		portfolioConfig: portfolioConfig,
		reportingConfig: reportingConfig,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	candles, err := e.loadData(ctx)
	if err != nil {
		return err
	}

	set, err := ComputeIndicators(candles, e.indicatorConfig)
	if err != nil {
		return err
	}
	signals := BuildSignalSeries(set, e.strategy)

	transitions := len(candles) - 1
	if transitions < 0 {
		transitions = 0
	}
	bar := initProgressBar(transitions)
	trajectory, err := simulate(candles, signals, e.portfolioConfig, func() { bar.Add(1) })
	if err != nil {
		return err
	}
	fmt.Println()

	report := e.generateReport(candles, trajectory)
	e.printReport(report)

	if e.reportingConfig.filePath != "" {
		if err := e.writeTrajectoryCSVFile(e.reportingConfig.filePath, candles, set, signals, trajectory); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) loadData(ctx context.Context) ([]types.Candle, error) {
	asset, err := e.db.GetAssetByTicker(ctx, e.feed.ticker)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", e.feed.ticker, err)
	}
	candles, err := e.db.GetCandles(ctx, asset.Id, e.feed.interval, e.feed.start, e.feed.end)
	if err != nil {
		return nil, fmt.Errorf("load candles for %s: %w", e.feed.ticker, err)
	}
	for i := range candles {
		candles[i].Ticker = asset.Ticker
	}
	return candles, nil
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Backtesting in progress..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
