package service

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

var (
	ErrAlreadyAtReview = errors.New("checkout is already at the review stage")
	ErrNotAtReview     = errors.New("order can only be confirmed at the review stage")
	ErrUnknownField    = errors.New("unknown checkout form field")
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// ValidationError reports the first unmet requirement of a wizard stage.
type ValidationError struct {
	Stage model.Stage
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout stage %s: field %q is missing or malformed", e.Stage, e.Field)
}

// Checkout is the four-stage wizard for a single cart. It owns a snapshot
// of the cart lines and the totals taken when checkout started, plus the
// form being filled in. It is discarded on exit and after confirmation.
type Checkout struct {
	stage      model.Stage
	form       *model.CheckoutForm
	lines      []model.CartLine
	totals     model.OrderTotals
	processor  model.OrderProcessor
	dispatcher EventDispatcher
}

func NewCheckout(lines []model.CartLine, totals model.OrderTotals, processor model.OrderProcessor, dispatcher EventDispatcher) *Checkout {
	return &Checkout{
		stage:      model.StageCustomerInfo,
		form:       model.NewCheckoutForm(),
		lines:      lines,
		totals:     totals,
		processor:  processor,
		dispatcher: dispatcher,
	}
}

func (c *Checkout) Stage() model.Stage {
	return c.stage
}

func (c *Checkout) Form() *model.CheckoutForm {
	return c.form
}

func (c *Checkout) Totals() model.OrderTotals {
	return c.totals
}

func (c *Checkout) Lines() []model.CartLine {
	lines := make([]model.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// SetField applies one user input by its form field name. The names match
// the storefront form controls.
func (c *Checkout) SetField(name, value string) error {
	switch name {
	case "firstName":
		c.form.Customer.FirstName = value
	case "lastName":
		c.form.Customer.LastName = value
	case "email":
		c.form.Customer.Email = value
	case "phone":
		c.form.Customer.Phone = value
	case "address":
		c.form.Shipping.Address = value
	case "city":
		c.form.Shipping.City = value
	case "state":
		c.form.Shipping.State = value
	case "zipCode":
		c.form.Shipping.PostalCode = value
	case "country":
		c.form.Shipping.Country = value
	case "paymentMethod":
		method, err := model.ParsePaymentMethod(value)
		if err != nil {
			return err
		}
		c.SelectPaymentMethod(method)
	case "cardName":
		c.form.Card.CardName = value
	case "cardNumber":
		c.form.Card.CardNumber = value
	case "expiryDate":
		c.form.Card.Expiry = value
	case "cvv":
		c.form.Card.CVV = value
	case "bankName":
		c.form.Bank.BankName = value
	case "accountNumber":
		c.form.Bank.AccountNumber = value
	case "notes":
		c.form.Notes = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SelectPaymentMethod switches the active payment variant. The inactive
// variant's fields are kept so the user can switch back without retyping;
// they are simply never validated or submitted.
func (c *Checkout) SelectPaymentMethod(method model.PaymentMethod) {
	c.form.Method = method
}

// Advance moves to the next stage once the current stage validates. At the
// review stage it refuses with ErrAlreadyAtReview: the caller must route
// that input to ConfirmOrder instead of having it silently absorbed.
func (c *Checkout) Advance() error {
	if c.stage == model.StageReview {
		return ErrAlreadyAtReview
	}
	if err := validateStage(c.stage, c.form); err != nil {
		return err
	}

	from := c.stage
	c.stage++
	_ = c.dispatcher.Dispatch(model.CheckoutStageChanged{From: from, To: c.stage})
	return nil
}

// Retreat steps back one stage. At the first stage it reports exit=true
// and stays put; handing control back to the cart is the caller's job.
func (c *Checkout) Retreat() (exit bool) {
	if c.stage == model.StageCustomerInfo {
		return true
	}

	from := c.stage
	c.stage--
	_ = c.dispatcher.Dispatch(model.CheckoutStageChanged{From: from, To: c.stage})
	return false
}

// ConfirmOrder re-validates every stage, snapshots the order and hands it
// to the order processor. Only callable from the review stage.
func (c *Checkout) ConfirmOrder() (*model.OrderSummary, error) {
	if c.stage != model.StageReview {
		return nil, ErrNotAtReview
	}
	for stage := model.StageCustomerInfo; stage <= model.StagePayment; stage++ {
		if err := validateStage(stage, c.form); err != nil {
			return nil, err
		}
	}

	summary := &model.OrderSummary{
		ID:        uuid.New(),
		Customer:  c.form.Customer,
		Shipping:  c.form.Shipping,
		Payment:   paymentInfo(c.form),
		Notes:     c.form.Notes,
		Lines:     c.Lines(),
		Totals:    c.totals,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.processor.Process(*summary); err != nil {
		return nil, err
	}

	_ = c.dispatcher.Dispatch(model.OrderConfirmed{OrderID: summary.ID, Total: summary.Totals.Total})
	return summary, nil
}

// paymentInfo reduces the form to the active variant only. Card numbers
// leave the checkout as their last four digits.
func paymentInfo(form *model.CheckoutForm) model.PaymentInfo {
	info := model.PaymentInfo{Method: form.Method}
	switch form.Method {
	case model.PaymentCreditCard:
		info.CardName = form.Card.CardName
		info.CardLastFour = lastFour(form.Card.CardNumber)
	case model.PaymentBankTransfer:
		info.BankName = form.Bank.BankName
	}
	return info
}

func lastFour(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func validateStage(stage model.Stage, form *model.CheckoutForm) error {
	switch stage {
	case model.StageCustomerInfo:
		return validateCustomer(form.Customer)
	case model.StageShipping:
		return validateShipping(form.Shipping)
	case model.StagePayment:
		return validatePayment(form)
	}
	return nil
}

func validateCustomer(customer model.CustomerInfo) error {
	if blank(customer.FirstName) {
		return &ValidationError{Stage: model.StageCustomerInfo, Field: "firstName"}
	}
	if blank(customer.LastName) {
		return &ValidationError{Stage: model.StageCustomerInfo, Field: "lastName"}
	}
	if _, err := mail.ParseAddress(customer.Email); err != nil {
		return &ValidationError{Stage: model.StageCustomerInfo, Field: "email"}
	}
	if blank(customer.Phone) {
		return &ValidationError{Stage: model.StageCustomerInfo, Field: "phone"}
	}
	return nil
}

func validateShipping(shipping model.ShippingAddress) error {
	if blank(shipping.Address) {
		return &ValidationError{Stage: model.StageShipping, Field: "address"}
	}
	if blank(shipping.City) {
		return &ValidationError{Stage: model.StageShipping, Field: "city"}
	}
	if blank(shipping.State) {
		return &ValidationError{Stage: model.StageShipping, Field: "state"}
	}
	if blank(shipping.PostalCode) {
		return &ValidationError{Stage: model.StageShipping, Field: "zipCode"}
	}
	if blank(shipping.Country) {
		return &ValidationError{Stage: model.StageShipping, Field: "country"}
	}
	return nil
}

func validatePayment(form *model.CheckoutForm) error {
	switch form.Method {
	case model.PaymentCreditCard:
		if blank(form.Card.CardName) {
			return &ValidationError{Stage: model.StagePayment, Field: "cardName"}
		}
		if blank(form.Card.CardNumber) {
			return &ValidationError{Stage: model.StagePayment, Field: "cardNumber"}
		}
		if !expiryPattern.MatchString(form.Card.Expiry) {
			return &ValidationError{Stage: model.StagePayment, Field: "expiryDate"}
		}
		if blank(form.Card.CVV) {
			return &ValidationError{Stage: model.StagePayment, Field: "cvv"}
		}
	case model.PaymentBankTransfer:
		if blank(form.Bank.BankName) {
			return &ValidationError{Stage: model.StagePayment, Field: "bankName"}
		}
		if blank(form.Bank.AccountNumber) {
			return &ValidationError{Stage: model.StagePayment, Field: "accountNumber"}
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
