package dto

import "time"

type AnalyticsResponse struct {
	TotalOrders  int64                  `json:"totalOrders"`
	TotalRevenue float64                `json:"totalRevenue"`
	ProductSales []ProductSalesResponse `json:"productSales"`
}

type ProductSalesResponse struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	SalesCount  int64  `json:"salesCount"`
}

type RecentOrderResponse struct {
	OrderID      uint      `json:"orderId"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	NameCustomer string    `json:"nameCustomer"`
	Status       string    `json:"status"`
}

type TopSellingResponse struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
}
