/**
 * @description
 * Dashboard KPI aggregator.
 * Folds the per-product competitiveness views across the whole catalog into
 * the fixed KPI record the dashboard renders.
 *
 * @dependencies
 * - github.com/shopspring/decimal
 * - internal/models
 *
 * @notes
 * - Never fails on an empty catalog: all counts are 0 and
 *   lowestPriceCompetitor is null.
 * - lowestPriceCompetitor averages every price row a competitor has;
 *   competitors with zero rows are ignored, ties go to the first competitor
 *   in iteration order.
 */

package analytics

import (
	"github.com/paintcompare/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ComputeDashboardKPIs aggregates catalog-wide counters from the derived views
func ComputeDashboardKPIs(catalog []models.ProductWithCompetitorPrices, competitors []models.Competitor, prices []models.CompetitorPrice) models.DashboardKPIs {
	kpis := models.DashboardKPIs{
		TotalProducts:    len(catalog),
		TotalCompetitors: len(competitors),
	}

	for _, view := range catalog {
		if view.CompetitivenessPercentage != nil && !view.CompetitivenessPercentage.IsPositive() {
			kpis.CompetitiveProducts++
		}
		if len(view.CompetitorPrices) > 0 {
			kpis.ProductsWithCompetitorPrices++
		} else {
			kpis.PriceAdjustmentOpportunities++
		}
	}

	kpis.LowestPriceCompetitor = lowestAverageCompetitor(competitors, prices)
	return kpis
}

// lowestAverageCompetitor returns the competitor with the smallest mean price
// over its rows, or nil when no competitor has any priced rows
func lowestAverageCompetitor(competitors []models.Competitor, prices []models.CompetitorPrice) *models.CompetitorAverage {
	var best *models.CompetitorAverage
	var bestAvg decimal.Decimal

	for _, c := range competitors {
		sum := decimal.Zero
		count := 0
		for _, cp := range prices {
			if cp.CompetitorID == c.ID {
				sum = sum.Add(cp.Price.Decimal)
				count++
			}
		}
		if count == 0 {
			continue
		}
		avg := sum.Div(decimal.NewFromInt(int64(count))).Round(2)
		if best == nil || avg.LessThan(bestAvg) {
			best = &models.CompetitorAverage{Name: c.Name, AvgPrice: models.NewNumber(avg)}
			bestAvg = avg
		}
	}

	return best
}
