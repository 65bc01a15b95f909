package usecase

import "errors"

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct is returned when product input fails validation.
	ErrInvalidProduct = errors.New("invalid product")
)
