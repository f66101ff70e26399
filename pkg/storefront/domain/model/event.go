package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemAddedToCart struct {
	ProductID string
	Quantity  int
	ItemCount int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type CartQuantityUpdated struct {
	ProductID   string
	OldQuantity int
	NewQuantity int
}

func (e CartQuantityUpdated) Type() string { return "CartQuantityUpdated" }

type ItemRemovedFromCart struct {
	ProductID string
}

func (e ItemRemovedFromCart) Type() string { return "ItemRemovedFromCart" }

type CheckoutStarted struct {
	ItemCount int
	Subtotal  decimal.Decimal
}

func (e CheckoutStarted) Type() string { return "CheckoutStarted" }

type CheckoutStageChanged struct {
	From Stage
	To   Stage
}

func (e CheckoutStageChanged) Type() string { return "CheckoutStageChanged" }

type CheckoutExited struct {
	Stage Stage
}

func (e CheckoutExited) Type() string { return "CheckoutExited" }

type OrderConfirmed struct {
	OrderID uuid.UUID
	Total   decimal.Decimal
}

func (e OrderConfirmed) Type() string { return "OrderConfirmed" }
