// Package dto defines data transfer objects for the orders HTTP API.
package dto

import "time"

// CreateOrderRequest is the body of POST /orders.
// Optional presentation fields fall back to server defaults when omitted.
type CreateOrderRequest struct {
	UserID        uint               `json:"userId" binding:"required,gt=0"`
	TotalPrice    *float64           `json:"totalPrice" binding:"required,gte=0"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Address       *string            `json:"address" binding:"omitempty,max=512"`
	Payment       *string            `json:"payment" binding:"omitempty,max=64"`
	DeliveryFee   *float64           `json:"deliveryFee" binding:"omitempty,gte=0"`
	OrderDiscount *float64           `json:"orderDiscount" binding:"omitempty,gte=0"`
	Note          *string            `json:"note"`
}

type OrderItemRequest struct {
	ProductID uint     `json:"productId" binding:"required,gt=0"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is one element of GET /orders.
type OrderResponse struct {
	OrderID       uint               `json:"orderId"`
	UserID        uint               `json:"userId"`
	NameCustomer  string             `json:"nameCustomer"`
	TotalPrice    float64            `json:"totalPrice"`
	CreatedAt     time.Time          `json:"createdAt"`
	Status        string             `json:"status"`
	ListCartItem  []CartItemResponse `json:"listCartItem"`
	Address       string             `json:"address"`
	Payment       string             `json:"payment"`
	DeliveryFee   float64            `json:"deliveryFee"`
	OrderDiscount float64            `json:"orderDiscount"`
	Note          string             `json:"note"`
}

// CartItemResponse shows a line with the product data captured at order time.
type CartItemResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Images      string  `json:"images"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderCountResponse struct {
	TotalOrders int64 `json:"totalOrders"`
}

type RevenueResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
}
