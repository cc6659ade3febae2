package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
)

var supportedIntervals = map[types.Interval]bool{
	types.OneMinute:      true,
	types.FiveMinutes:    true,
	types.FifteenMinutes: true,
	types.ThirtyMinutes:  true,
	types.Hour:           true,
	types.FourHours:      true,
	types.Day:            true,
	types.Week:           true,
}

const candlesQuery = `
SELECT timestamp, open, high, low, close, volume
FROM candles
WHERE asset_id = $1 AND interval = $2 AND timestamp >= $3 AND timestamp <= $4
ORDER BY timestamp ASC`

// GetCandles retrieves the candle series for an asset, sorted ascending by
// timestamp as the engine requires.
func (db *Database) GetCandles(ctx context.Context, assetId int, interval types.Interval, start, end time.Time) ([]types.Candle, error) {
	if !supportedIntervals[interval] {
		return nil, fmt.Errorf("interval %s: %w", interval, ErrIntervalNotSupported)
	}

	rows, err := db.conn.Query(ctx, candlesQuery, assetId, string(interval), start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candles []types.Candle
	for rows.Next() {
		candle := types.Candle{AssetId: assetId, Interval: interval}
		err := rows.Scan(
			&candle.Timestamp,
			&candle.Open,
			&candle.High,
			&candle.Low,
			&candle.Close,
			&candle.Volume,
		)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, ErrNoCandles
	}
	return candles, nil
}
