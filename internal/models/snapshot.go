/**
 * @description
 * Snapshot of every store collection, used by the JSONBin backup/sync flow.
 * The field names match the JSON documents the dashboard already stores remotely.
 */

package models

import (
	"time"
)

// Snapshot carries all four collections plus the sync timestamp
type Snapshot struct {
	Products         []Product         `json:"products"`
	Competitors      []Competitor      `json:"competitors"`
	CompetitorPrices []CompetitorPrice `json:"competitorPrices"`
	PriceHistory     []PriceHistory    `json:"priceHistory"`
	LastSync         time.Time         `json:"lastSync"`
}
