// Package dataset builds the backtest and modelling datasets: it fans
// out per-ticker provider calls, merges the results, derives the
// growth-rate metrics, and writes everything as CSV files.
package dataset

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ternarybob/arbor"

	"github.com/mauv0809/backtest-pipeline/internal/eodhd"
	"github.com/mauv0809/backtest-pipeline/internal/models"
)

// EarningsLimit is the maximum number of earnings-calendar entries
// fetched per ticker.
const EarningsLimit = 8

// MarketClient is the market-data capability the fetcher needs.
type MarketClient interface {
	GetEOD(ctx context.Context, symbol string, opts ...eodhd.QueryOption) (eodhd.EODResponse, error)
	GetDividends(ctx context.Context, symbol string, opts ...eodhd.QueryOption) (eodhd.DividendsResponse, error)
	GetEarnings(ctx context.Context, symbol string, opts ...eodhd.QueryOption) ([]eodhd.EarningsEvent, error)
}

// MacroClient is the statistical-series capability the fetcher needs.
type MacroClient interface {
	GetSeries(ctx context.Context, seriesID string, start, end time.Time) ([]models.MacroObservation, error)
}

// Fetcher wraps the provider clients with the pipeline's failure
// contract: a failed call is logged and yields an empty result, so one
// bad ticker never aborts the batch.
type Fetcher struct {
	market MarketClient
	macro  MacroClient
	logger arbor.ILogger
}

// NewFetcher creates a new fetcher.
func NewFetcher(market MarketClient, macro MacroClient, logger arbor.ILogger) *Fetcher {
	return &Fetcher{
		market: market,
		macro:  macro,
		logger: logger,
	}
}

// FetchPriceHistory retrieves price and dividend history for one ticker
// over the closed date interval, attaching the ticker to every row. On
// any failure both tables come back empty.
func (f *Fetcher) FetchPriceHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, []models.DividendRecord) {
	eod, err := f.market.GetEOD(ctx, ticker, eodhd.WithDateRange(start, end))
	if err != nil {
		f.logger.Error().Str("ticker", ticker).Err(err).Msg("Error fetching price history")
		return nil, nil
	}

	divs, err := f.market.GetDividends(ctx, ticker, eodhd.WithDateRange(start, end))
	if err != nil {
		f.logger.Error().Str("ticker", ticker).Err(err).Msg("Error fetching dividends")
		return nil, nil
	}

	prices := make([]models.PriceRecord, 0, len(eod))
	for _, row := range eod {
		prices = append(prices, models.PriceRecord{
			Ticker:        ticker,
			Date:          row.Date,
			Open:          decimal.NewFromFloat(row.Open),
			High:          decimal.NewFromFloat(row.High),
			Low:           decimal.NewFromFloat(row.Low),
			Close:         decimal.NewFromFloat(row.Close),
			AdjustedClose: decimal.NewFromFloat(row.AdjustedClose),
			Volume:        row.Volume,
		})
	}

	dividends := make([]models.DividendRecord, 0, len(divs))
	for _, row := range divs {
		dividends = append(dividends, models.DividendRecord{
			Date:   row.Date,
			Amount: decimal.NewFromFloat(row.Value),
			Ticker: ticker,
		})
	}

	return prices, dividends
}

// FetchEarningsHistory retrieves up to EarningsLimit most recent
// earnings-calendar entries for one ticker, most recent first. On
// failure the table comes back empty.
func (f *Fetcher) FetchEarningsHistory(ctx context.Context, ticker string) []models.EarningsRecord {
	events, err := f.market.GetEarnings(ctx, ticker, eodhd.WithLimit(EarningsLimit))
	if err != nil {
		f.logger.Error().Str("ticker", ticker).Err(err).Msg("Error fetching earnings data")
		return nil
	}

	earnings := make([]models.EarningsRecord, 0, len(events))
	for _, ev := range events {
		earnings = append(earnings, models.EarningsRecord{
			Date:            ev.ReportDate,
			ReportedEPS:     decimalPtr(ev.Actual),
			EstimatedEPS:    decimalPtr(ev.Estimate),
			Surprise:        decimalPtr(ev.Difference),
			SurprisePercent: decimalPtr(ev.Percent),
			Ticker:          ticker,
		})
	}

	return earnings
}

// decimalPtr converts an optional float into an optional decimal.
func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// FetchMacroSeries retrieves one macroeconomic series over the closed
// date interval. On failure the series comes back empty.
func (f *Fetcher) FetchMacroSeries(ctx context.Context, seriesID string, start, end time.Time) []models.MacroObservation {
	series, err := f.macro.GetSeries(ctx, seriesID, start, end)
	if err != nil {
		f.logger.Error().Str("series_id", seriesID).Err(err).Msg("Error fetching FRED data")
		return nil
	}

	return series
}
