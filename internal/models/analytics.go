/**
 * @description
 * Derived analytics models. None of these are stored; they are computed from
 * store snapshots by internal/analytics.
 *
 * @notes
 * - LowestCompetitorPrice and CompetitivenessPercentage are pointers because
 *   "no competitor data" must stay distinguishable from "exactly tied" (0).
 * - The KPI payload carries no trend delta: there is no historical snapshot
 *   mechanism to compute one honestly.
 */

package models

// PricedCompetitor joins a competitor price row with its resolved competitor
type PricedCompetitor struct {
	CompetitorPrice
	Competitor Competitor `json:"competitor"`
}

// ProductWithCompetitorPrices is a product plus its joined competitor prices
// and the derived competitiveness fields
type ProductWithCompetitorPrices struct {
	Product
	CompetitorPrices []PricedCompetitor `json:"competitorPrices"`

	// Lowest resolved competitor price; nil when no competitor prices exist
	LowestCompetitorPrice *Number `json:"lowestCompetitorPrice,omitempty"`
	// (lowest - own) / lowest * 100, rounded to 2 places.
	// Negative when the best competitor undercuts the retailer's own price;
	// nil when no data.
	CompetitivenessPercentage *Number `json:"competitivenessPercentage,omitempty"`
}

// CompetitorAverage identifies the competitor with the lowest mean price
type CompetitorAverage struct {
	Name     string `json:"name"`
	AvgPrice Number `json:"avgPrice"`
}

// DashboardKPIs aggregates catalog-wide competitiveness counters
type DashboardKPIs struct {
	TotalProducts                int                `json:"totalProducts"`
	CompetitiveProducts          int                `json:"competitiveProducts"`
	TotalCompetitors             int                `json:"totalCompetitors"`
	ProductsWithCompetitorPrices int                `json:"productsWithCompetitorPrices"`
	LowestPriceCompetitor        *CompetitorAverage `json:"lowestPriceCompetitor"`
	PriceAdjustmentOpportunities int                `json:"priceAdjustmentOpportunities"`
}
