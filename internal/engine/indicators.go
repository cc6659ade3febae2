package engine

import (
	"errors"
	"fmt"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

var InvalidParameterErr = errors.New("invalid parameter")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComputeIndicators derives the full indicator set for a candle series. The
// result is index-aligned with the input; steps with insufficient history
// carry undefined values rather than fabricated numbers. An empty series
// yields an empty set.
func ComputeIndicators(candles []types.Candle, cfg *IndicatorConfig) (types.IndicatorSet, error) {
	windows := []int{cfg.smaShort, cfg.smaLong, cfg.rsiWindow, cfg.macdShort, cfg.macdLong, cfg.macdSignal}
	for _, w := range windows {
		if w <= 0 {
			return nil, fmt.Errorf("%w: indicator window must be positive, got %d", InvalidParameterErr, w)
		}
	}

	set := make(types.IndicatorSet, len(candles))
	if len(candles) == 0 {
		return set, nil
	}

	closes := types.Closes(candles)
	smaShort := sma(closes, cfg.smaShort)
	smaLong := sma(closes, cfg.smaLong)
	rsiValues := rsi(closes, cfg.rsiWindow)
	macdLine, signalLine, histLine := macd(closes, cfg.macdShort, cfg.macdLong, cfg.macdSignal)

	for i := range set {
		set[i] = types.IndicatorPoint{
			SMA20:      smaShort[i],
			SMA50:      smaLong[i],
			RSI14:      rsiValues[i],
			MACD:       macdLine[i],
			MACDSignal: signalLine[i],
			MACDHist:   histLine[i],
		}
	}
	return set, nil
}

// sma computes the trailing-window arithmetic mean with a running sum.
// Undefined until the window has filled (index >= window-1).
func sma(closes []decimal.Decimal, window int) []types.IndicatorValue {
	out := make([]types.IndicatorValue, len(closes))
	divisor := decimal.NewFromInt(int64(window))
	sum := decimal.Zero

	for i, close := range closes {
		sum = sum.Add(close)
		if i >= window {
			sum = sum.Sub(closes[i-window])
		}
		if i >= window-1 {
			out[i] = types.NewIndicatorValue(sum.Div(divisor))
		} else {
			out[i] = types.UndefinedIndicatorValue()
		}
	}
	return out
}

// rsi computes the Relative Strength Index from trailing-window rolling
// means of gains and losses. The first delta exists at index 1, so the
// window fills at index == window.
func rsi(closes []decimal.Decimal, window int) []types.IndicatorValue {
	out := make([]types.IndicatorValue, len(closes))
	gains := make([]decimal.Decimal, len(closes))
	losses := make([]decimal.Decimal, len(closes))
	divisor := decimal.NewFromInt(int64(window))
	gainSum := decimal.Zero
	lossSum := decimal.Zero

	for i := range closes {
		if i == 0 {
			out[i] = types.UndefinedIndicatorValue()
			continue
		}

		delta := closes[i].Sub(closes[i-1])
		if delta.IsPositive() {
			gains[i] = delta
		} else if delta.IsNegative() {
			losses[i] = delta.Neg()
		}
		gainSum = gainSum.Add(gains[i])
		lossSum = lossSum.Add(losses[i])
		if i > window {
			gainSum = gainSum.Sub(gains[i-window])
			lossSum = lossSum.Sub(losses[i-window])
		}

		if i < window {
			out[i] = types.UndefinedIndicatorValue()
			continue
		}
		out[i] = rsiFromMeans(gainSum.Div(divisor), lossSum.Div(divisor))
	}
	return out
}

// rsiFromMeans resolves the degenerate zero-loss window deterministically:
// gains with no losses saturate to exactly 100, and a window with no price
// movement at all (0/0) stays undefined instead of producing a number.
func rsiFromMeans(meanGain, meanLoss decimal.Decimal) types.IndicatorValue {
	if meanLoss.IsZero() {
		if meanGain.IsPositive() {
			return types.NewIndicatorValue(hundred)
		}
		return types.UndefinedIndicatorValue()
	}
	rs := meanGain.Div(meanLoss)
	return types.NewIndicatorValue(hundred.Sub(hundred.Div(one.Add(rs))))
}

// ema computes the exponential moving average with smoothing factor
// alpha = 2/(span+1), seeded with the first observation. Defined from
// index 0 onward; there is no warm-up period.
func ema(series []decimal.Decimal, span int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(series))
	if len(series) == 0 {
		return out
	}
	alpha := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(span) + 1))
	decay := one.Sub(alpha)

	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha.Mul(series[i]).Add(decay.Mul(out[i-1]))
	}
	return out
}

// macd returns the MACD line (fast EMA minus slow EMA), its signal line
// (EMA of the MACD line), and the histogram (line minus signal).
func macd(closes []decimal.Decimal, short, long, signalSpan int) (line, signal, hist []types.IndicatorValue) {
	fast := ema(closes, short)
	slow := ema(closes, long)

	macdLine := make([]decimal.Decimal, len(closes))
	for i := range closes {
		macdLine[i] = fast[i].Sub(slow[i])
	}
	signalLine := ema(macdLine, signalSpan)

	line = make([]types.IndicatorValue, len(closes))
	signal = make([]types.IndicatorValue, len(closes))
	hist = make([]types.IndicatorValue, len(closes))
	for i := range closes {
		line[i] = types.NewIndicatorValue(macdLine[i])
		signal[i] = types.NewIndicatorValue(signalLine[i])
		hist[i] = types.NewIndicatorValue(macdLine[i].Sub(signalLine[i]))
	}
	return line, signal, hist
}
