/**
 * @description
 * Competitor record model.
 * An external seller whose prices are tracked for comparison.
 */

package models

import (
	"time"
)

// Competitor represents an external paint seller
type Competitor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertCompetitor is the payload for creating a competitor
type InsertCompetitor struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}

// CompetitorPatch is a partial update; nil fields are left untouched
type CompetitorPatch struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}
