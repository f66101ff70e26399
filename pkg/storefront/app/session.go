package app

import (
	"errors"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
)

var (
	ErrEmptyCart        = errors.New("cannot start checkout with an empty cart")
	ErrNoActiveCheckout = errors.New("no checkout in progress")
)

// Session is the single owning context for one shopper: exactly one cart
// and at most one checkout. Every user event from the rendering surface
// funnels through here, so no other component holds cart state.
type Session struct {
	catalog    service.CatalogService
	carts      service.CartService
	totalsCfg  service.TotalsConfig
	processor  model.OrderProcessor
	dispatcher service.EventDispatcher

	cart     *model.Cart
	checkout *service.Checkout
}

func NewSession(
	catalog service.CatalogService,
	carts service.CartService,
	totalsCfg service.TotalsConfig,
	processor model.OrderProcessor,
	dispatcher service.EventDispatcher,
) *Session {
	return &Session{
		catalog:    catalog,
		carts:      carts,
		totalsCfg:  totalsCfg,
		processor:  processor,
		dispatcher: dispatcher,
		cart:       model.NewCart(),
	}
}

func (s *Session) Cart() *model.Cart {
	return s.cart
}

// Totals recomputes the derived totals for the current cart. The cart
// drawer and the checkout summary both read from here, so they can never
// disagree.
func (s *Session) Totals() model.OrderTotals {
	return service.ComputeTotals(s.cart.Subtotal(), s.totalsCfg)
}

func (s *Session) AddToCart(productID string, quantity int) error {
	product, err := s.catalog.FindProduct(productID)
	if err != nil {
		return err
	}
	return s.carts.AddItem(s.cart, *product, quantity)
}

func (s *Session) SetQuantity(productID string, quantity int) error {
	return s.carts.UpdateQuantity(s.cart, productID, quantity)
}

func (s *Session) RemoveFromCart(productID string) {
	s.carts.RemoveItem(s.cart, productID)
}

// StartCheckout snapshots the cart lines and totals into a fresh checkout.
// Any checkout already in progress is discarded, matching a shopper
// re-entering the wizard from the cart.
func (s *Session) StartCheckout() (*service.Checkout, error) {
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	s.checkout = service.NewCheckout(s.cart.Snapshot(), s.Totals(), s.processor, s.dispatcher)
	_ = s.dispatcher.Dispatch(model.CheckoutStarted{
		ItemCount: s.cart.ItemCount(),
		Subtotal:  s.cart.Subtotal(),
	})
	return s.checkout, nil
}

func (s *Session) Checkout() (*service.Checkout, error) {
	if s.checkout == nil {
		return nil, ErrNoActiveCheckout
	}
	return s.checkout, nil
}

// Retreat steps the wizard back; from the first stage it exits checkout
// and discards the form, returning control to the cart.
func (s *Session) Retreat() (exited bool, err error) {
	checkout, err := s.Checkout()
	if err != nil {
		return false, err
	}
	if checkout.Retreat() {
		s.ExitCheckout()
		return true, nil
	}
	return false, nil
}

// ExitCheckout discards the in-progress form. Nothing is persisted.
func (s *Session) ExitCheckout() {
	if s.checkout == nil {
		return
	}
	_ = s.dispatcher.Dispatch(model.CheckoutExited{Stage: s.checkout.Stage()})
	s.checkout = nil
}

// ConfirmOrder finishes the wizard. On success the cart and the checkout
// are both discarded; the summary lives on only with the order processor.
func (s *Session) ConfirmOrder() (*model.OrderSummary, error) {
	checkout, err := s.Checkout()
	if err != nil {
		return nil, err
	}

	summary, err := checkout.ConfirmOrder()
	if err != nil {
		return nil, err
	}

	s.cart = model.NewCart()
	s.checkout = nil
	return summary, nil
}
