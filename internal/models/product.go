/**
 * @description
 * Product record model.
 * A catalog item (paint) owned by the retailer, carrying the retailer's own price.
 *
 * @dependencies
 * - internal/models Money
 */

package models

import (
	"time"
)

// Product represents a paint product in the retailer's catalog
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Type      string    `json:"type"` // latex, esmalte, verniz, primer
	Size      string    `json:"size"` // 900ml, 3.6L, 18L
	Color     string    `json:"color"`
	Price     Money     `json:"price"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsertProduct is the payload for creating a product
type InsertProduct struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Type     string  `json:"type"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Price    Money   `json:"price"`
	ImageURL *string `json:"imageUrl"`
}

// ProductPatch is a partial update; nil fields are left untouched
type ProductPatch struct {
	Name     *string `json:"name"`
	Brand    *string `json:"brand"`
	Type     *string `json:"type"`
	Size     *string `json:"size"`
	Color    *string `json:"color"`
	Price    *Money  `json:"price"`
	ImageURL *string `json:"imageUrl"`
}
