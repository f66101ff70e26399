package service

import (
	"github.com/shopspring/decimal"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

// TotalsConfig holds the fixed order pricing policy: a flat shipping
// charge and a tax rate applied to the subtotal.
type TotalsConfig struct {
	ShippingFlat decimal.Decimal
	TaxRate      decimal.Decimal
}

func DefaultTotalsConfig() TotalsConfig {
	return TotalsConfig{
		ShippingFlat: decimal.RequireFromString("25.00"),
		TaxRate:      decimal.RequireFromString("0.10"),
	}
}

// ComputeTotals derives shipping, tax and grand total from a subtotal.
// Tax is rounded to 2 decimal places before summing so the total is the
// exact sum of the displayed components.
func ComputeTotals(subtotal decimal.Decimal, cfg TotalsConfig) model.OrderTotals {
	tax := subtotal.Mul(cfg.TaxRate).Round(2)
	return model.OrderTotals{
		Subtotal: subtotal,
		Shipping: cfg.ShippingFlat,
		Tax:      tax,
		Total:    subtotal.Add(cfg.ShippingFlat).Add(tax),
	}
}
