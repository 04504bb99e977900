/**
 * @description
 * Price record models.
 * CompetitorPrice holds the latest known price a competitor charges for a product.
 * PriceHistory is an append-only log of price observations over time; entries
 * without a competitorId record the retailer's own price.
 *
 * @dependencies
 * - internal/models Money
 */

package models

import (
	"time"
)

// CompetitorPrice represents the latest recorded price of a competitor for a product
type CompetitorPrice struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	CompetitorID string    `json:"competitorId"`
	Price        Money     `json:"price"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// InsertCompetitorPrice is the payload for recording a competitor price
type InsertCompetitorPrice struct {
	ProductID    string     `json:"productId"`
	CompetitorID string     `json:"competitorId"`
	Price        Money      `json:"price"`
	RecordedAt   *time.Time `json:"recordedAt"`
}

// CompetitorPricePatch is a partial update; nil fields are left untouched
type CompetitorPricePatch struct {
	Price      *Money     `json:"price"`
	RecordedAt *time.Time `json:"recordedAt"`
}

// PriceHistory represents one price observation for a product
type PriceHistory struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	Price        Money     `json:"price"`
	CompetitorID *string   `json:"competitorId"` // nil for the retailer's own price
	RecordedAt   time.Time `json:"recordedAt"`
}

// InsertPriceHistory is the payload for appending a price observation
type InsertPriceHistory struct {
	ProductID    string     `json:"productId"`
	Price        Money      `json:"price"`
	CompetitorID *string    `json:"competitorId"`
	RecordedAt   *time.Time `json:"recordedAt"`
}
