package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product is out of stock")
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

type CartService interface {
	AddItem(cart *model.Cart, product model.Product, quantity int) error
	UpdateQuantity(cart *model.Cart, productID string, quantity int) error
	RemoveItem(cart *model.Cart, productID string)
	Subtotal(cart *model.Cart) decimal.Decimal
	ItemCount(cart *model.Cart) int
}

func NewCartService(dispatcher EventDispatcher) CartService {
	return &cartService{dispatcher: dispatcher}
}

type cartService struct {
	dispatcher EventDispatcher
}

// AddItem merges the quantity into an existing line for the product, or
// appends a new line with the unit price snapshotted from the catalog
// product. Line order is first-added-wins.
func (s *cartService) AddItem(cart *model.Cart, product model.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if product.Availability == model.OutOfStock {
		return ErrProductUnavailable
	}

	if i, ok := cart.FindLine(product.ID); ok {
		cart.Lines[i].Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, model.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}

	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{
		ProductID: product.ID,
		Quantity:  quantity,
		ItemCount: cart.ItemCount(),
	})
	return nil
}

// UpdateQuantity replaces a line's quantity, clamped to a minimum of 1.
// Deleting a line is an explicit RemoveItem, never a zero quantity.
func (s *cartService) UpdateQuantity(cart *model.Cart, productID string, quantity int) error {
	i, ok := cart.FindLine(productID)
	if !ok {
		return ErrItemNotFound
	}

	if quantity < 1 {
		quantity = 1
	}

	old := cart.Lines[i].Quantity
	cart.Lines[i].Quantity = quantity

	_ = s.dispatcher.Dispatch(model.CartQuantityUpdated{
		ProductID:   productID,
		OldQuantity: old,
		NewQuantity: quantity,
	})
	return nil
}

// RemoveItem is idempotent; removing an absent line is a no-op.
func (s *cartService) RemoveItem(cart *model.Cart, productID string) {
	i, ok := cart.FindLine(productID)
	if !ok {
		return
	}

	cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	_ = s.dispatcher.Dispatch(model.ItemRemovedFromCart{ProductID: productID})
}

func (s *cartService) Subtotal(cart *model.Cart) decimal.Decimal {
	return cart.Subtotal()
}

func (s *cartService) ItemCount(cart *model.Cart) int {
	return cart.ItemCount()
}
