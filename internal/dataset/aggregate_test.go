package dataset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/backtest-pipeline/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeResults_SortedByDateThenTicker(t *testing.T) {
	results := []Result{
		{
			Prices: []models.PriceRecord{
				{Ticker: "MSFT", Date: day(2)},
				{Ticker: "MSFT", Date: day(1)},
			},
		},
		{
			Prices: []models.PriceRecord{
				{Ticker: "AAPL", Date: day(2)},
				{Ticker: "AAPL", Date: day(1)},
			},
		},
	}

	prices, _, _ := MergeResults(results)
	require.Len(t, prices, 4)

	assert.Equal(t, "AAPL", prices[0].Ticker)
	assert.Equal(t, day(1), prices[0].Date)
	assert.Equal(t, "MSFT", prices[1].Ticker)
	assert.Equal(t, day(1), prices[1].Date)
	assert.Equal(t, "AAPL", prices[2].Ticker)
	assert.Equal(t, day(2), prices[2].Date)
	assert.Equal(t, "MSFT", prices[3].Ticker)
	assert.Equal(t, day(2), prices[3].Date)
}

func TestMergeResults_AllTables(t *testing.T) {
	results := []Result{
		{
			Prices:    []models.PriceRecord{{Ticker: "AAPL", Date: day(1)}},
			Dividends: []models.DividendRecord{{Ticker: "AAPL", Date: day(5), Amount: decimal.NewFromFloat(0.24)}},
			Earnings:  []models.EarningsRecord{{Ticker: "AAPL", Date: day(9)}},
		},
		{
			// A ticker that paid no dividends contributes zero rows to
			// that table, not a placeholder.
			Prices:   []models.PriceRecord{{Ticker: "MSFT", Date: day(1)}},
			Earnings: []models.EarningsRecord{{Ticker: "MSFT", Date: day(3)}},
		},
	}

	prices, dividends, earnings := MergeResults(results)
	assert.Len(t, prices, 2)
	assert.Len(t, dividends, 1)
	require.Len(t, earnings, 2)
	assert.Equal(t, "MSFT", earnings[0].Ticker)
	assert.Equal(t, "AAPL", earnings[1].Ticker)
}

func TestMergeResults_AllEmpty(t *testing.T) {
	prices, dividends, earnings := MergeResults(nil)
	assert.NotNil(t, prices)
	assert.NotNil(t, dividends)
	assert.NotNil(t, earnings)
	assert.Empty(t, prices)
	assert.Empty(t, dividends)
	assert.Empty(t, earnings)

	prices, dividends, earnings = MergeResults([]Result{{}, {}})
	assert.Empty(t, prices)
	assert.Empty(t, dividends)
	assert.Empty(t, earnings)
}
