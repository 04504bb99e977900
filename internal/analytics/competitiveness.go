/**
 * @description
 * Competitiveness calculator.
 * Joins a product against the competitor-price and competitor collections and
 * derives the lowest competitor price plus a competitiveness percentage.
 * Pure functions over store snapshots: no state, no side effects, identical
 * output for an unchanged snapshot.
 *
 * @dependencies
 * - github.com/shopspring/decimal
 * - internal/models
 *
 * @notes
 * - Rows whose competitorId does not resolve are excluded from the join.
 *   The exclusion is not an error, but the dropped-row count is returned so
 *   callers can surface it instead of losing data silently.
 * - Percentage sign convention: negative means the best competitor undercuts
 *   the retailer's own price; exactly 0 means tied. The dashboard's
 *   "competitive" predicate depends on "<= 0 is competitive".
 */

package analytics

import (
	"github.com/paintcompare/backend/internal/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CompareProduct computes the derived view for a single product.
// Returns the view plus the number of competitor-price rows dropped because
// their competitor could not be resolved.
func CompareProduct(p models.Product, prices []models.CompetitorPrice, competitors []models.Competitor) (models.ProductWithCompetitorPrices, int) {
	return compareWithIndex(p, prices, indexCompetitors(competitors))
}

// CompareCatalog computes the derived view for every product.
// The competitor index is built once and shared across products.
func CompareCatalog(products []models.Product, prices []models.CompetitorPrice, competitors []models.Competitor) ([]models.ProductWithCompetitorPrices, int) {
	idx := indexCompetitors(competitors)

	views := make([]models.ProductWithCompetitorPrices, 0, len(products))
	dropped := 0
	for _, p := range products {
		view, d := compareWithIndex(p, prices, idx)
		views = append(views, view)
		dropped += d
	}
	return views, dropped
}

func indexCompetitors(competitors []models.Competitor) map[string]models.Competitor {
	idx := make(map[string]models.Competitor, len(competitors))
	for _, c := range competitors {
		idx[c.ID] = c
	}
	return idx
}

func compareWithIndex(p models.Product, prices []models.CompetitorPrice, idx map[string]models.Competitor) (models.ProductWithCompetitorPrices, int) {
	view := models.ProductWithCompetitorPrices{
		Product:          p,
		CompetitorPrices: []models.PricedCompetitor{},
	}

	dropped := 0
	for _, cp := range prices {
		if cp.ProductID != p.ID {
			continue
		}
		competitor, ok := idx[cp.CompetitorID]
		if !ok {
			dropped++
			continue
		}
		view.CompetitorPrices = append(view.CompetitorPrices, models.PricedCompetitor{
			CompetitorPrice: cp,
			Competitor:      competitor,
		})
	}

	if len(view.CompetitorPrices) == 0 {
		return view, dropped
	}

	lowest := view.CompetitorPrices[0].Price.Decimal
	for _, pc := range view.CompetitorPrices[1:] {
		if pc.Price.Decimal.LessThan(lowest) {
			lowest = pc.Price.Decimal
		}
	}
	lowestNum := models.NewNumber(lowest)
	view.LowestCompetitorPrice = &lowestNum

	// A non-positive lowest price cannot occur under the money invariant, but a
	// zero divisor must never reach the percentage computation.
	if lowest.IsPositive() {
		pct := lowest.Sub(p.Price.Decimal).Div(lowest).Mul(oneHundred).Round(2)
		pctNum := models.NewNumber(pct)
		view.CompetitivenessPercentage = &pctNum
	}

	return view, dropped
}
