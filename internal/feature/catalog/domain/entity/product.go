// Package entity defines the domain entities for the catalog feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item.
// Orders copy its display fields at creation time, so edits here never rewrite order history.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:255;not null" json:"name"`

	// Price is a non-negative unit price.
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	Description string `gorm:"type:text" json:"description"`

	// Image is a reference (URL or object key); the binary lives elsewhere.
	Image string `gorm:"size:512" json:"image"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
