package engine

import (
	"github.com/mehdibadjian/trading-bot/types"
)

// Strategy maps one step's indicator values to a trade stance.
type Strategy interface {
	Evaluate(point types.IndicatorPoint) types.Stance
}

// BuildSignalSeries evaluates the strategy at every step and derives the
// position-change deltas. The first step's delta is 0 by convention: there
// is no previous stance to trade against.
func BuildSignalSeries(set types.IndicatorSet, strat Strategy) types.SignalSeries {
	signals := make(types.SignalSeries, len(set))
	prev := types.StanceNeutral

	for i, point := range set {
		stance := strat.Evaluate(point)
		change := int(stance) - int(prev)
		if i == 0 {
			change = 0
		}
		signals[i] = types.SignalPoint{Stance: stance, PositionChange: change}
		prev = stance
	}
	return signals
}
