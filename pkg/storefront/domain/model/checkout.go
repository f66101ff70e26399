package model

import "fmt"

type Stage int

const (
	StageCustomerInfo Stage = iota + 1
	StageShipping
	StagePayment
	StageReview
)

func (s Stage) String() string {
	switch s {
	case StageCustomerInfo:
		return "customer-info"
	case StageShipping:
		return "shipping"
	case StagePayment:
		return "payment"
	case StageReview:
		return "review"
	}
	return "unknown"
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCreditCard:
		return PaymentCreditCard, nil
	case PaymentBankTransfer:
		return PaymentBankTransfer, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type ShippingAddress struct {
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CreditCardDetails struct {
	CardName   string
	CardNumber string
	Expiry     string
	CVV        string
}

type BankTransferDetails struct {
	BankName      string
	AccountNumber string
}

// CheckoutForm spans all four wizard stages. Both payment variants keep
// their fields when the user switches methods, so switching back does not
// require retyping; only the variant selected by Method is ever validated
// or copied into an order.
type CheckoutForm struct {
	Customer CustomerInfo
	Shipping ShippingAddress
	Method   PaymentMethod
	Card     CreditCardDetails
	Bank     BankTransferDetails
	Notes    string
}

func NewCheckoutForm() *CheckoutForm {
	return &CheckoutForm{
		Method:   PaymentCreditCard,
		Shipping: ShippingAddress{Country: "Brazil"},
	}
}
