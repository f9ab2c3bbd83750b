package dataset

import (
	"sort"

	"github.com/mauv0809/backtest-pipeline/internal/models"
)

// Result holds one ticker's fetched tables.
type Result struct {
	Prices    []models.PriceRecord
	Dividends []models.DividendRecord
	Earnings  []models.EarningsRecord
}

// MergeResults concatenates the per-ticker tables and sorts each merged
// table by (date, ticker) ascending with a stable sort. When every
// input table is empty the merged table is empty, never nil.
func MergeResults(results []Result) ([]models.PriceRecord, []models.DividendRecord, []models.EarningsRecord) {
	prices := []models.PriceRecord{}
	dividends := []models.DividendRecord{}
	earnings := []models.EarningsRecord{}

	for _, r := range results {
		prices = append(prices, r.Prices...)
		dividends = append(dividends, r.Dividends...)
		earnings = append(earnings, r.Earnings...)
	}

	sort.SliceStable(prices, func(i, j int) bool {
		if !prices[i].Date.Equal(prices[j].Date) {
			return prices[i].Date.Before(prices[j].Date)
		}
		return prices[i].Ticker < prices[j].Ticker
	})
	sort.SliceStable(dividends, func(i, j int) bool {
		if !dividends[i].Date.Equal(dividends[j].Date) {
			return dividends[i].Date.Before(dividends[j].Date)
		}
		return dividends[i].Ticker < dividends[j].Ticker
	})
	sort.SliceStable(earnings, func(i, j int) bool {
		if !earnings[i].Date.Equal(earnings[j].Date) {
			return earnings[i].Date.Before(earnings[j].Date)
		}
		return earnings[i].Ticker < earnings[j].Ticker
	})

	return prices, dividends, earnings
}
