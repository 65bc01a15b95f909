// Package dto defines data transfer objects for the catalog HTTP API.
package dto

import "time"

// ProductRequest is the body of POST /products and PUT /products/:id.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image" binding:"required"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
