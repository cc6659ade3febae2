// Package trendfollow derives trade stances from SMA, RSI and MACD
// thresholds using a fixed overwrite chain: later rules overwrite earlier
// ones whenever both fire. The order is part of the contract, not an
// accident. In particular the MACD direction rules run last, so they
// dominate whenever the MACD line differs from its signal line, which makes
// the SMA crossover and RSI overbought rules mostly vestigial. Intentional;
// raise it with the product owner before changing the order here.
package trendfollow

import (
	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

const defaultOverbought = 70

type Strategy struct {
	overbought decimal.Decimal
}

func New() *Strategy {
	return &Strategy{overbought: decimal.NewFromInt(defaultOverbought)}
}

// NewWithOverbought overrides the RSI overbought threshold.
func NewWithOverbought(threshold decimal.Decimal) *Strategy {
	return &Strategy{overbought: threshold}
}

// Evaluate applies the rule chain to one step's indicators. Rules whose
// inputs are undefined (insufficient history) never trigger, so warm-up
// steps fall through to neutral unless a defined rule fires.
func (s *Strategy) Evaluate(point types.IndicatorPoint) types.Stance {
	stance := types.StanceNeutral
	if point.SMA20.GreaterThan(point.SMA50) {
		stance = types.StanceLong
	}
	if point.RSI14.Above(s.overbought) {
		stance = types.StanceShort
	}
	if point.MACD.GreaterThan(point.MACDSignal) {
		stance = types.StanceLong
	}
	if point.MACD.LessThan(point.MACDSignal) {
		stance = types.StanceShort
	}
	return stance
}
