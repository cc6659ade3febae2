package engine

import (
	"fmt"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

var SeriesLengthMismatchErr = fmt.Errorf("%w: candle and signal series length mismatch", InvalidParameterErr)

// Only single-step stance moves trade. A direct long-to-short flip (delta
// -2) changes nothing in the account, matching the signal contract.
const (
	enterLong = 1
	exitLong  = -1
)

// Simulate walks the series in temporal order and applies position changes
// to the account with a one-step execution lag: the change detected at step
// i (the trigger step) executes at step i's close and is recorded at step
// i+1. Each state's Total is valued with the trigger step's close, not the
// destination step's own close. That valuation rule changes numeric results
// and is part of the contract.
func Simulate(candles []types.Candle, signals types.SignalSeries, cfg *PortfolioConfig) (types.Trajectory, error) {
	return simulate(candles, signals, cfg, nil)
}

func simulate(candles []types.Candle, signals types.SignalSeries, cfg *PortfolioConfig, tick func()) (types.Trajectory, error) {
	if !cfg.initialCash.IsPositive() {
		return nil, fmt.Errorf("%w: initial cash must be positive, got %s", InvalidParameterErr, cfg.initialCash)
	}
	if len(candles) != len(signals) {
		return nil, fmt.Errorf("%w: %d candles, %d signals", SeriesLengthMismatchErr, len(candles), len(signals))
	}

	trajectory := make(types.Trajectory, len(candles))
	if len(candles) == 0 {
		return trajectory, nil
	}

	trajectory[0] = types.PortfolioState{
		Cash:     cfg.initialCash,
		Holdings: decimal.Zero,
		Total:    cfg.initialCash,
	}

	for i := 0; i < len(candles)-1; i++ {
		cur := trajectory[i]
		next := cur // carry forward unless a trade fires
		triggerClose := candles[i].Close

		switch {
		case signals[i].PositionChange == enterLong && cur.Holdings.IsZero():
			next.Holdings = cur.Cash.Div(triggerClose)
			next.Cash = decimal.Zero
		case signals[i].PositionChange == exitLong && cur.Holdings.IsPositive():
			next.Cash = cur.Holdings.Mul(triggerClose)
			next.Holdings = decimal.Zero
		}

		next.Total = next.Cash.Add(next.Holdings.Mul(triggerClose))
		trajectory[i+1] = next

		if tick != nil {
			tick()
		}
	}
	return trajectory, nil
}
