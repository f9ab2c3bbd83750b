package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredKeys(t *testing.T) {
	t.Helper()
	t.Setenv("MARKET_API_KEY", "market-key")
	t.Setenv("FRED_API_KEY", "fred-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sp500_ticker_periods_tested.csv", cfg.TickerFile)
	assert.Equal(t, "backtest_data", cfg.OutputDir)
	assert.Equal(t, "GS10", cfg.SeriesID)
	assert.Equal(t, DefaultTickerLimit, cfg.TickerLimit)
	assert.Equal(t, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), cfg.StartDate)
	assert.False(t, cfg.EndDate.IsZero())
}

func TestLoad_EndDateIsLocalToday(t *testing.T) {
	setRequiredKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	year, month, day := time.Now().Date()
	assert.Equal(t, time.Date(year, month, day, 0, 0, 0, 0, time.UTC), cfg.EndDate)
}

func TestLoad_MissingMarketKey(t *testing.T) {
	t.Setenv("MARKET_API_KEY", "")
	t.Setenv("FRED_API_KEY", "fred-key")

	_, err := Load()
	assert.ErrorContains(t, err, "MARKET_API_KEY")
}

func TestLoad_MissingFredKey(t *testing.T) {
	t.Setenv("MARKET_API_KEY", "market-key")
	t.Setenv("FRED_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "FRED_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("TICKER_LIMIT", "50")
	t.Setenv("START_DATE", "2020-01-01")
	t.Setenv("FRED_SERIES_ID", "DGS10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.TickerLimit)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cfg.StartDate)
	assert.Equal(t, "DGS10", cfg.SeriesID)
}

func TestLoad_InvalidTickerLimit(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("TICKER_LIMIT", "-3")

	_, err := Load()
	assert.ErrorContains(t, err, "TICKER_LIMIT")
}

func TestLoad_InvalidStartDate(t *testing.T) {
	setRequiredKeys(t)
	t.Setenv("START_DATE", "08/01/2023")

	_, err := Load()
	assert.ErrorContains(t, err, "START_DATE")
}
