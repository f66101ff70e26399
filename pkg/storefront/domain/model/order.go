package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderTotals is a derived, read-only view over a cart subtotal. It is
// recomputed wherever it is displayed and never stored independently.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// PaymentInfo carries only the active payment variant of a confirmed order.
// Card numbers are reduced to their last four digits before they leave the
// checkout.
type PaymentInfo struct {
	Method       PaymentMethod
	CardName     string
	CardLastFour string
	BankName     string
}

// OrderSummary is the immutable snapshot produced by a confirmed checkout
// and handed to the order processor. Nothing in this core retains it.
type OrderSummary struct {
	ID        uuid.UUID
	Customer  CustomerInfo
	Shipping  ShippingAddress
	Payment   PaymentInfo
	Notes     string
	Lines     []CartLine
	Totals    OrderTotals
	CreatedAt time.Time
}

// OrderProcessor is the external collaborator that receives confirmed
// orders. Payment execution and persistence are its problem, not ours.
type OrderProcessor interface {
	Process(summary OrderSummary) error
}
