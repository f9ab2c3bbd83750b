package eodhd

import "time"

// EODData represents a single day's end-of-day price data.
type EODData struct {
	Date          time.Time `json:"-"`
	DateStr       string    `json:"date"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`
	AdjustedClose float64   `json:"adjusted_close"`
	Volume        int64     `json:"volume"`
}

// EODResponse is a slice of EODData.
type EODResponse []EODData

// DividendData represents a single dividend payment.
type DividendData struct {
	Date            time.Time `json:"-"`
	DateStr         string    `json:"date"`
	DeclarationDate string    `json:"declarationDate"`
	RecordDate      string    `json:"recordDate"`
	PaymentDate     string    `json:"paymentDate"`
	Value           float64   `json:"value"`
	Currency        string    `json:"currency"`
}

// DividendsResponse is a slice of DividendData.
type DividendsResponse []DividendData

// EarningsEvent represents one earnings-calendar entry. The numeric
// fields are null in the API response when the event has not been
// reported yet, so they are pointers rather than plain floats.
type EarningsEvent struct {
	ReportDate time.Time `json:"-"`
	Code       string    `json:"code"`
	ReportStr  string    `json:"report_date"`
	PeriodEnd  string    `json:"date"`
	Actual     *float64  `json:"actual"`
	Estimate   *float64  `json:"estimate"`
	Difference *float64  `json:"difference"`
	Percent    *float64  `json:"percent"`
}

// earningsCalendarResponse is the envelope returned by /calendar/earnings.
type earningsCalendarResponse struct {
	Type     string          `json:"type"`
	Earnings []EarningsEvent `json:"earnings"`
}
