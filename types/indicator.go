package types

import (
	"github.com/shopspring/decimal"
)

// IndicatorValue is a tagged optional: either a defined decimal value or
// "undefined" when the indicator's window has not seen enough history. An
// undefined value never compares greater or less than anything, so threshold
// rules built on these helpers simply don't trigger during warm-up.
type IndicatorValue struct {
	value   decimal.Decimal
	defined bool
}

func NewIndicatorValue(value decimal.Decimal) IndicatorValue {
	return IndicatorValue{value: value, defined: true}
}

func UndefinedIndicatorValue() IndicatorValue {
	return IndicatorValue{}
}

func (v IndicatorValue) Defined() bool {
	return v.defined
}

// Decimal returns the underlying value. Zero when undefined; callers are
// expected to check Defined first.
func (v IndicatorValue) Decimal() decimal.Decimal {
	return v.value
}

func (v IndicatorValue) GreaterThan(other IndicatorValue) bool {
	return v.defined && other.defined && v.value.GreaterThan(other.value)
}

func (v IndicatorValue) LessThan(other IndicatorValue) bool {
	return v.defined && other.defined && v.value.LessThan(other.value)
}

// Above reports whether the value is defined and strictly above the given
// threshold.
func (v IndicatorValue) Above(threshold decimal.Decimal) bool {
	return v.defined && v.value.GreaterThan(threshold)
}

// IndicatorPoint holds every indicator for one step of the price series.
type IndicatorPoint struct {
	SMA20      IndicatorValue
	SMA50      IndicatorValue
	RSI14      IndicatorValue
	MACD       IndicatorValue
	MACDSignal IndicatorValue
	MACDHist   IndicatorValue
}

// IndicatorSet is index-aligned with the candle series it was derived from.
type IndicatorSet []IndicatorPoint
