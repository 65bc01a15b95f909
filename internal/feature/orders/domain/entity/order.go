// Package entity defines the domain entities for the order pipeline.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one checkout: a header owned by a user plus at least one line.
type Order struct {
	ID     uint
	UserID uint
	// CustomerName is the owner's display name, filled on reads only.
	CustomerName string

	// TotalPrice is client-supplied and authoritative; it is not recomputed from lines.
	TotalPrice decimal.Decimal
	Status     Status

	Address       string
	PaymentMethod string
	DeliveryFee   decimal.Decimal
	Discount      decimal.Decimal
	Note          string

	CreatedAt time.Time
	Lines     []OrderLine
}

// LinesTotal returns Σ price×quantity over the order's lines.
func (o *Order) LinesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

// ExpectedTotal is LinesTotal + DeliveryFee - Discount.
func (o *Order) ExpectedTotal() decimal.Decimal {
	return o.LinesTotal().Add(o.DeliveryFee).Sub(o.Discount)
}

// OrderLine is one product/quantity/price entry.
// Product display fields are copied at order time and never re-read from the catalog.
type OrderLine struct {
	ID                 uint
	OrderID            uint
	ProductID          uint
	ProductName        string
	ProductImage       string
	ProductDescription string
	Quantity           int
	Price              decimal.Decimal
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ProductSnapshot is the catalog data an order line copies.
type ProductSnapshot struct {
	ID          uint
	Name        string
	Image       string
	Description string
	Price       decimal.Decimal
}
