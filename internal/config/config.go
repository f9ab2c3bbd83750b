package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultTickerLimit caps how many tickers a run processes. The
	// limit is deliberately small for test runs against the paid APIs;
	// production runs should raise it via TICKER_LIMIT.
	DefaultTickerLimit = 5

	// DefaultSeriesID is the FRED series fetched alongside equity data:
	// the 10-Year Treasury constant-maturity yield.
	DefaultSeriesID = "GS10"

	defaultTickerFile = "sp500_ticker_periods_tested.csv"
	defaultOutputDir  = "backtest_data"
	defaultStartDate  = "2023-08-01"
)

// Config holds everything a pipeline run needs from the environment.
type Config struct {
	MarketAPIKey string
	FredAPIKey   string

	TickerFile  string
	OutputDir   string
	SeriesID    string
	StartDate   time.Time
	EndDate     time.Time
	TickerLimit int
}

// Load reads configuration from environment variables. MARKET_API_KEY
// and FRED_API_KEY are required; everything else has a default. The end
// date defaults to today.
func Load() (*Config, error) {
	cfg := &Config{
		MarketAPIKey: os.Getenv("MARKET_API_KEY"),
		FredAPIKey:   os.Getenv("FRED_API_KEY"),
		TickerFile:   envOr("TICKER_FILE", defaultTickerFile),
		OutputDir:    envOr("OUTPUT_DIR", defaultOutputDir),
		SeriesID:     envOr("FRED_SERIES_ID", DefaultSeriesID),
		TickerLimit:  DefaultTickerLimit,
	}

	if cfg.MarketAPIKey == "" {
		return nil, fmt.Errorf("MARKET_API_KEY environment variable is required")
	}
	if cfg.FredAPIKey == "" {
		return nil, fmt.Errorf("FRED_API_KEY environment variable is required")
	}

	start, err := time.Parse("2006-01-02", envOr("START_DATE", defaultStartDate))
	if err != nil {
		return nil, fmt.Errorf("parsing START_DATE: %w", err)
	}
	cfg.StartDate = start

	// The end bound is the local calendar date, not a UTC day boundary.
	year, month, day := time.Now().Date()
	cfg.EndDate = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if v := os.Getenv("TICKER_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid TICKER_LIMIT %q", v)
		}
		cfg.TickerLimit = limit
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
