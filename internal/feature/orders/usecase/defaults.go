package usecase

import (
	"github.com/shopspring/decimal"

	"shop_backend/internal/shared/envutil"
)

const DefaultPaymentMethod = "cash_on_delivery"

// Defaults fills presentation fields the client omitted when an order is created.
// The filled values are persisted with the order; reads never synthesize them.
type Defaults struct {
	Address       string
	PaymentMethod string
	DeliveryFee   decimal.Decimal
	Discount      decimal.Decimal
	Note          string
}

// LoadDefaultsFromEnv reads ORDER_DEFAULT_ADDRESS and ORDER_DEFAULT_PAYMENT.
// Fee and discount default to zero.
func LoadDefaultsFromEnv() Defaults {
	return Defaults{
		Address:       envutil.String("ORDER_DEFAULT_ADDRESS", ""),
		PaymentMethod: envutil.String("ORDER_DEFAULT_PAYMENT", DefaultPaymentMethod),
		DeliveryFee:   decimal.Zero,
		Discount:      decimal.Zero,
	}
}
