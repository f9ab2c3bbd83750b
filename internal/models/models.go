package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is one day of OHLCV history for a single ticker.
type PriceRecord struct {
	Ticker        string          `json:"ticker"`
	Date          time.Time       `json:"date"`
	Open          decimal.Decimal `json:"open"`
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Close         decimal.Decimal `json:"close"`
	AdjustedClose decimal.Decimal `json:"adjusted_close"`
	Volume        int64           `json:"volume"`
}

// DividendRecord is a single dividend payment for a ticker.
type DividendRecord struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Ticker string          `json:"ticker"`
}

// EarningsRecord is one earnings-calendar entry for a ticker. The EPS
// fields are nil when the provider has no figure for the period, e.g.
// a pending event that has not been reported yet.
type EarningsRecord struct {
	Date            time.Time        `json:"date"`
	ReportedEPS     *decimal.Decimal `json:"reported_eps"`
	EstimatedEPS    *decimal.Decimal `json:"estimated_eps"`
	Surprise        *decimal.Decimal `json:"surprise"`
	SurprisePercent *decimal.Decimal `json:"surprise_percent"`
	Ticker          string           `json:"ticker"`
}

// MacroObservation is one point of a macroeconomic series.
// It carries no ticker; the series is shared across all tickers.
type MacroObservation struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}
