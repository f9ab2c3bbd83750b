package dataset

import (
	"github.com/mauv0809/backtest-pipeline/internal/models"
)

// AnnualizedGrowthRate computes the average quarterly EPS growth rate
// across consecutive earnings rows in the order received and scales it
// by 4 to approximate a yearly rate. Pairs with an unreported EPS on
// either side, or a zero previous EPS, have no defined fractional
// change and are dropped. The second return is false when no valid
// change remains (fewer than two rows, or all changes undefined).
func AnnualizedGrowthRate(earnings []models.EarningsRecord) (float64, bool) {
	var sum float64
	var count int

	for i := 1; i < len(earnings); i++ {
		if earnings[i-1].ReportedEPS == nil || earnings[i].ReportedEPS == nil {
			continue
		}
		prev, _ := earnings[i-1].ReportedEPS.Float64()
		if prev == 0 {
			continue
		}
		cur, _ := earnings[i].ReportedEPS.Float64()
		sum += (cur - prev) / prev
		count++
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count) * 4, true
}

// IntrinsicValue estimates a fair value from EPS and an annualized
// growth rate using the simplified Graham formula eps * (7 + 2g).
func IntrinsicValue(eps, growthRate float64) float64 {
	return eps * (7 + 2*growthRate)
}
