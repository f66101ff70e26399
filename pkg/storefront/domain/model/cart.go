package model

import "github.com/shopspring/decimal"

// CartLine pairs a product with a quantity. UnitPrice is snapshotted at the
// moment the line is created, so a catalog price change never rewrites a
// cart that is already on its way to checkout.
type CartLine struct {
	ProductID string
	Name      string
	Category  Category
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds an ordered sequence of lines, one per product ID, in
// first-added order. Mutation goes through the cart service.
type Cart struct {
	Lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) FindLine(productID string) (int, bool) {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns a copy of the lines, safe to hand to a checkout or an
// order summary without aliasing the live cart.
func (c *Cart) Snapshot() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
