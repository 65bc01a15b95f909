package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales is one row of the best-seller ranking.
type ProductSales struct {
	ProductID   uint
	ProductName string
	SalesCount  int64
}

// RecentOrder is a header-only view for the admin feed.
type RecentOrder struct {
	OrderID      uint
	TotalPrice   decimal.Decimal
	CreatedAt    time.Time
	CustomerName string
	Status       Status
}

type Analytics struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
	ProductSales []ProductSales
}
