package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// SQLiteDatabase reads candles from a local SQLite file. Same surface as
// the Postgres Database, for runs without a database server.
type SQLiteDatabase struct {
	db *sql.DB
}

// NewSQLiteDatabase opens the SQLite database and verifies it is readable.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &SQLiteDatabase{db: db}, nil
}

func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

const sqliteAssetByTickerQuery = `
SELECT id, ticker, name, type, created_at, modified_at
FROM assets
WHERE ticker = ?`

// GetAssetByTicker retrieves a types.Asset by its ticker. Timestamps are
// stored as unix seconds.
func (s *SQLiteDatabase) GetAssetByTicker(ctx context.Context, ticker string) (*types.Asset, error) {
	asset := types.Asset{}
	var createdAt, modifiedAt int64
	err := s.db.QueryRowContext(ctx, sqliteAssetByTickerQuery, ticker).Scan(
		&asset.Id,
		&asset.Ticker,
		&asset.Name,
		&asset.Type,
		&createdAt,
		&modifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ticker %s %w", ticker, ErrAssetNotFound)
		}
		return nil, err
	}
	asset.CreatedAt = time.Unix(createdAt, 0)
	asset.ModifiedAt = time.Unix(modifiedAt, 0)
	return &asset, nil
}

const sqliteCandlesQuery = `
SELECT timestamp, open, high, low, close, volume
FROM candles
WHERE asset_id = ? AND interval = ? AND timestamp >= ? AND timestamp <= ?
ORDER BY timestamp ASC`

// GetCandles retrieves the candle series for an asset, sorted ascending by
// timestamp. Prices are stored as REAL columns.
func (s *SQLiteDatabase) GetCandles(ctx context.Context, assetId int, interval types.Interval, start, end time.Time) ([]types.Candle, error) {
	if !supportedIntervals[interval] {
		return nil, fmt.Errorf("interval %s: %w", interval, ErrIntervalNotSupported)
	}

	rows, err := s.db.QueryContext(ctx, sqliteCandlesQuery, assetId, string(interval), start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candles []types.Candle
	for rows.Next() {
		var ts int64
		var open, high, low, close, volume float64
		if err := rows.Scan(&ts, &open, &high, &low, &close, &volume); err != nil {
			return nil, err
		}
		candles = append(candles, types.Candle{
			AssetId:   assetId,
			Open:      decimal.NewFromFloat(open),
			High:      decimal.NewFromFloat(high),
			Low:       decimal.NewFromFloat(low),
			Close:     decimal.NewFromFloat(close),
			Volume:    decimal.NewFromFloat(volume),
			Interval:  interval,
			Timestamp: time.Unix(ts, 0).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, ErrNoCandles
	}
	return candles, nil
}
