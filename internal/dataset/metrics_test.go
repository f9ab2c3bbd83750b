package dataset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/backtest-pipeline/internal/models"
)

func epsPtr(e float64) *decimal.Decimal {
	d := decimal.NewFromFloat(e)
	return &d
}

func earningsWithEPS(eps ...float64) []models.EarningsRecord {
	records := make([]models.EarningsRecord, 0, len(eps))
	for i, e := range eps {
		records = append(records, models.EarningsRecord{
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -3*i, 0),
			ReportedEPS: epsPtr(e),
			Ticker:      "TEST",
		})
	}
	return records
}

func TestAnnualizedGrowthRate(t *testing.T) {
	growth, ok := AnnualizedGrowthRate(earningsWithEPS(2.0, 2.2, 2.0, 2.4))
	require.True(t, ok)

	// Quarterly changes are 0.1, -0.0909..., 0.2; mean ~0.0697,
	// annualized ~0.279.
	assert.InDelta(t, 0.2788, growth, 0.001)
}

func TestAnnualizedGrowthRate_Empty(t *testing.T) {
	_, ok := AnnualizedGrowthRate(nil)
	assert.False(t, ok)
}

func TestAnnualizedGrowthRate_SingleRow(t *testing.T) {
	_, ok := AnnualizedGrowthRate(earningsWithEPS(2.0))
	assert.False(t, ok)
}

func TestAnnualizedGrowthRate_ZeroEPSDropped(t *testing.T) {
	// The change after a zero EPS is undefined and must not
	// contribute; the remaining pair gives 0.1 * 4.
	growth, ok := AnnualizedGrowthRate(earningsWithEPS(0, 2.0, 2.2))
	require.True(t, ok)
	assert.InDelta(t, 0.4, growth, 1e-9)
}

func TestAnnualizedGrowthRate_UnreportedEPSDropped(t *testing.T) {
	// A pending event has no reported EPS; neither change involving it
	// is defined, so only the trailing pair contributes.
	records := []models.EarningsRecord{
		{ReportedEPS: nil, Ticker: "TEST"},
		{ReportedEPS: epsPtr(2.0), Ticker: "TEST"},
		{ReportedEPS: epsPtr(2.2), Ticker: "TEST"},
	}

	growth, ok := AnnualizedGrowthRate(records)
	require.True(t, ok)
	assert.InDelta(t, 0.4, growth, 1e-9)
}

func TestAnnualizedGrowthRate_UnreportedNewerSide(t *testing.T) {
	// An unreported EPS as the newer element of a pair must not count
	// as a drop to zero.
	records := []models.EarningsRecord{
		{ReportedEPS: epsPtr(2.0), Ticker: "TEST"},
		{ReportedEPS: nil, Ticker: "TEST"},
	}

	_, ok := AnnualizedGrowthRate(records)
	assert.False(t, ok)
}

func TestAnnualizedGrowthRate_AllZero(t *testing.T) {
	_, ok := AnnualizedGrowthRate(earningsWithEPS(0, 0, 0))
	assert.False(t, ok)
}

func TestAnnualizedGrowthRate_Negative(t *testing.T) {
	growth, ok := AnnualizedGrowthRate(earningsWithEPS(2.0, 1.0))
	require.True(t, ok)
	assert.InDelta(t, -2.0, growth, 1e-9)
}

func TestIntrinsicValue(t *testing.T) {
	assert.InDelta(t, 14.2, IntrinsicValue(2.0, 0.05), 1e-9)
}

func TestIntrinsicValue_ZeroGrowth(t *testing.T) {
	assert.InDelta(t, 21.0, IntrinsicValue(3.0, 0), 1e-9)
}
