package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
)

// writeTrajectoryCSVFile writes the per-step trajectory to a CSV file at the
// given path.
func (e *Engine) writeTrajectoryCSVFile(path string, candles []types.Candle, set types.IndicatorSet, signals types.SignalSeries, trajectory types.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trajectory file: %w", err)
	}
	defer f.Close()

	return writeTrajectoryCSV(f, candles, set, signals, trajectory)
}

// writeTrajectoryCSV writes the trajectory to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file.
func writeTrajectoryCSV(w io.Writer, candles []types.Candle, set types.IndicatorSet, signals types.SignalSeries, trajectory types.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"timestamp", // RFC3339
		"close",
		"sma_20",
		"sma_50",
		"rsi_14",
		"macd",
		"macd_signal",
		"macd_hist",
		"signal",
		"position_change",
		"cash",
		"holdings",
		"total",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, candle := range candles {
		record := []string{
			candle.Timestamp.Format(time.RFC3339),
			candle.Close.String(),
			indicatorField(set[i].SMA20),
			indicatorField(set[i].SMA50),
			indicatorField(set[i].RSI14),
			indicatorField(set[i].MACD),
			indicatorField(set[i].MACDSignal),
			indicatorField(set[i].MACDHist),
			strconv.Itoa(int(signals[i].Stance)),
			strconv.Itoa(signals[i].PositionChange),
			trajectory[i].Cash.String(),
			trajectory[i].Holdings.String(),
			trajectory[i].Total.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// indicatorField renders an undefined indicator as an empty cell.
func indicatorField(v types.IndicatorValue) string {
	if !v.Defined() {
		return ""
	}
	return v.Decimal().String()
}
