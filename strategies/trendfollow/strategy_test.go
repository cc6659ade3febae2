package trendfollow

import (
	"testing"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

func defined(v int64) types.IndicatorValue {
	return types.NewIndicatorValue(decimal.NewFromInt(v))
}

func TestEvaluate_RulePriority(t *testing.T) {
	tests := []struct {
		name  string
		point types.IndicatorPoint
		want  types.Stance
	}{
		{
			name:  "all undefined is neutral",
			point: types.IndicatorPoint{},
			want:  types.StanceNeutral,
		},
		{
			name: "sma crossover goes long when macd is balanced",
			point: types.IndicatorPoint{
				SMA20:      defined(105),
				SMA50:      defined(100),
				MACD:       defined(2),
				MACDSignal: defined(2),
			},
			want: types.StanceLong,
		},
		{
			name: "overbought rsi overrides sma crossover",
			point: types.IndicatorPoint{
				SMA20:      defined(105),
				SMA50:      defined(100),
				RSI14:      defined(75),
				MACD:       defined(2),
				MACDSignal: defined(2),
			},
			want: types.StanceShort,
		},
		{
			name: "macd above signal overrides overbought rsi",
			point: types.IndicatorPoint{
				SMA20:      defined(105),
				SMA50:      defined(100),
				RSI14:      defined(75),
				MACD:       defined(3),
				MACDSignal: defined(2),
			},
			want: types.StanceLong,
		},
		{
			name: "macd below signal overrides everything",
			point: types.IndicatorPoint{
				SMA20:      defined(105),
				SMA50:      defined(100),
				RSI14:      defined(75),
				MACD:       defined(1),
				MACDSignal: defined(2),
			},
			want: types.StanceShort,
		},
		{
			name: "rsi exactly at threshold does not trigger",
			point: types.IndicatorPoint{
				RSI14:      defined(70),
				MACD:       defined(2),
				MACDSignal: defined(2),
			},
			want: types.StanceNeutral,
		},
		{
			name: "undefined sma long never triggers crossover",
			point: types.IndicatorPoint{
				SMA20:      defined(105),
				MACD:       defined(2),
				MACDSignal: defined(2),
			},
			want: types.StanceNeutral,
		},
		{
			name: "macd alone drives the stance during sma warm-up",
			point: types.IndicatorPoint{
				MACD:       defined(3),
				MACDSignal: defined(2),
			},
			want: types.StanceLong,
		},
	}

	strat := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strat.Evaluate(tt.point); got != tt.want {
				t.Errorf("Evaluate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluate_CustomOverbought(t *testing.T) {
	strat := NewWithOverbought(decimal.NewFromInt(60))
	point := types.IndicatorPoint{
		RSI14:      defined(65),
		MACD:       defined(2),
		MACDSignal: defined(2),
	}
	if got := strat.Evaluate(point); got != types.StanceShort {
		t.Errorf("Evaluate() = %d, want short with lowered threshold", got)
	}
}

func TestEvaluate_StanceDomain(t *testing.T) {
	points := []types.IndicatorPoint{
		{},
		{SMA20: defined(2), SMA50: defined(1)},
		{RSI14: defined(99)},
		{MACD: defined(5), MACDSignal: defined(1)},
		{MACD: defined(1), MACDSignal: defined(5)},
	}
	strat := New()
	for i, p := range points {
		got := strat.Evaluate(p)
		if got < types.StanceShort || got > types.StanceLong {
			t.Errorf("Evaluate(point %d) = %d, outside {-1,0,1}", i, got)
		}
	}
}
