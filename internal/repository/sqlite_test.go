package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
)

func seedSQLite(t *testing.T) *SQLiteDatabase {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candles.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	schema := `
CREATE TABLE assets (
	id INTEGER PRIMARY KEY,
	ticker TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	modified_at INTEGER NOT NULL
);
CREATE TABLE candles (
	asset_id INTEGER NOT NULL,
	interval TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL,
	volume REAL NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	now := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	if _, err := db.Exec(
		`INSERT INTO assets (id, ticker, name, type, created_at, modified_at) VALUES (?, ?, ?, ?, ?, ?)`,
		1, "AAPL", "Apple", string(types.AssetTypeStock), now.Unix(), now.Unix(),
	); err != nil {
		t.Fatalf("insert asset: %v", err)
	}
	closes := []float64{100, 102, 101}
	for i, c := range closes {
		ts := now.AddDate(0, 0, i)
		if _, err := db.Exec(
			`INSERT INTO candles (asset_id, interval, timestamp, open, high, low, close, volume) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			1, string(types.Day), ts.Unix(), c, c+1, c-1, c, 1000,
		); err != nil {
			t.Fatalf("insert candle %d: %v", i, err)
		}
	}

	store, err := NewSQLiteDatabase(path)
	if err != nil {
		t.Fatalf("NewSQLiteDatabase() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteGetAssetByTicker(t *testing.T) {
	store := seedSQLite(t)
	ctx := context.Background()

	asset, err := store.GetAssetByTicker(ctx, "AAPL")
	if err != nil {
		t.Fatalf("GetAssetByTicker() error = %v", err)
	}
	if asset.Id != 1 || asset.Ticker != "AAPL" || asset.Type != types.AssetTypeStock {
		t.Errorf("asset = %+v, want id 1 ticker AAPL type STOCK", asset)
	}

	_, err = store.GetAssetByTicker(ctx, "MSFT")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("GetAssetByTicker(MSFT) error = %v, want ErrAssetNotFound", err)
	}
}

func TestSQLiteGetCandles(t *testing.T) {
	store := seedSQLite(t)
	ctx := context.Background()
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	candles, err := store.GetCandles(ctx, 1, types.Day, start, end)
	if err != nil {
		t.Fatalf("GetCandles() error = %v", err)
	}
	if len(candles) != 3 {
		t.Fatalf("candles = %d, want 3", len(candles))
	}
	for i := 1; i < len(candles); i++ {
		if !candles[i].Timestamp.After(candles[i-1].Timestamp) {
			t.Errorf("timestamps not ascending at %d", i)
		}
	}
	if candles[1].Close.String() != "102" {
		t.Errorf("close[1] = %s, want 102", candles[1].Close)
	}
	if candles[0].Interval != types.Day || candles[0].AssetId != 1 {
		t.Errorf("candle meta = %+v, want asset 1 interval D", candles[0])
	}
}

func TestSQLiteGetCandles_Errors(t *testing.T) {
	store := seedSQLite(t)
	ctx := context.Background()
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.GetCandles(ctx, 1, types.Interval("2D"), start, start.AddDate(0, 0, 10))
	if !errors.Is(err, ErrIntervalNotSupported) {
		t.Errorf("unsupported interval error = %v, want ErrIntervalNotSupported", err)
	}

	_, err = store.GetCandles(ctx, 1, types.Day, start.AddDate(1, 0, 0), start.AddDate(1, 0, 10))
	if !errors.Is(err, ErrNoCandles) {
		t.Errorf("empty range error = %v, want ErrNoCandles", err)
	}
}
