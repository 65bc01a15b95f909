package usecase

import "errors"

var (
	// ErrInvalidOrder is returned when an order submission fails validation.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrProductNotFound is returned when an order line references an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidStatus is returned for an empty or unknown status value.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrOrderNotFound is returned when a status update matched no row.
	ErrOrderNotFound = errors.New("order not found")
)
