package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
)

func setupCheckout(t *testing.T) (*service.Checkout, *mockOrderProcessor, *mockEventDispatcher) {
	t.Helper()
	lines := []model.CartLine{
		{ProductID: "a", Name: "Industrial Drilling Machine X500", UnitPrice: decimal.RequireFromString("2499.99"), Quantity: 1},
		{ProductID: "b", Name: "Replacement Drill Bit Set (10 pcs)", UnitPrice: decimal.RequireFromString("129.99"), Quantity: 2},
	}
	totals := service.ComputeTotals(decimal.RequireFromString("2759.97"), service.DefaultTotalsConfig())
	processor := &mockOrderProcessor{}
	dispatcher := &mockEventDispatcher{}
	return service.NewCheckout(lines, totals, processor, dispatcher), processor, dispatcher
}

func fillCustomer(t *testing.T, c *service.Checkout) {
	t.Helper()
	require.NoError(t, c.SetField("firstName", "Maria"))
	require.NoError(t, c.SetField("lastName", "Santos"))
	require.NoError(t, c.SetField("email", "maria.santos@example.com"))
	require.NoError(t, c.SetField("phone", "+55 11 91234-5678"))
}

func fillShipping(t *testing.T, c *service.Checkout) {
	t.Helper()
	require.NoError(t, c.SetField("address", "Rua das Flores 123"))
	require.NoError(t, c.SetField("city", "Sao Paulo"))
	require.NoError(t, c.SetField("state", "SP"))
	require.NoError(t, c.SetField("zipCode", "01310-100"))
	// Country defaults to Brazil and stays valid.
}

func fillCard(t *testing.T, c *service.Checkout) {
	t.Helper()
	require.NoError(t, c.SetField("cardName", "Maria Santos"))
	require.NoError(t, c.SetField("cardNumber", "4111 1111 1111 1234"))
	require.NoError(t, c.SetField("expiryDate", "09/27"))
	require.NoError(t, c.SetField("cvv", "123"))
}

func TestCheckoutAdvance(t *testing.T) {
	t.Run("refuses to advance past an unmet requirement", func(t *testing.T) {
		checkout, _, _ := setupCheckout(t)

		err := checkout.Advance()
		var validation *service.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, model.StageCustomerInfo, validation.Stage)
		assert.Equal(t, "firstName", validation.Field)
		assert.Equal(t, model.StageCustomerInfo, checkout.Stage())
	})

	t.Run("reports the first unmet field in stage order", func(t *testing.T) {
		checkout, _, _ := setupCheckout(t)
		require.NoError(t, checkout.SetField("firstName", "Maria"))
		require.NoError(t, checkout.SetField("lastName", "Santos"))
		require.NoError(t, checkout.SetField("email", "not-an-email"))

		err := checkout.Advance()
		var validation *service.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "email", validation.Field)
	})

	t.Run("walks all four stages", func(t *testing.T) {
		checkout, _, dispatcher := setupCheckout(t)

		fillCustomer(t, checkout)
		require.NoError(t, checkout.Advance())
		assert.Equal(t, model.StageShipping, checkout.Stage())

		fillShipping(t, checkout)
		require.NoError(t, checkout.Advance())
		assert.Equal(t, model.StagePayment, checkout.Stage())

		fillCard(t, checkout)
		require.NoError(t, checkout.Advance())
		assert.Equal(t, model.StageReview, checkout.Stage())

		assert.Len(t, dispatcher.events, 3)
	})

	t.Run("rejects a malformed expiry date", func(t *testing.T) {
		checkout, _, _ := setupCheckout(t)
		fillCustomer(t, checkout)
		require.NoError(t, checkout.Advance())
		fillShipping(t, checkout)
		require.NoError(t, checkout.Advance())

		fillCard(t, checkout)
		require.NoError(t, checkout.SetField("expiryDate", "13/27"))

		err := checkout.Advance()
		var validation *service.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, model.StagePayment, validation.Stage)
		assert.Equal(t, "expiryDate", validation.Field)
	})

	t.Run("is clamped at review", func(t *testing.T) {
		checkout, _ := reviewStageCheckout(t)
		assert.ErrorIs(t, checkout.Advance(), service.ErrAlreadyAtReview)
		assert.Equal(t, model.StageReview, checkout.Stage())
	})
}

func TestCheckoutRetreat(t *testing.T) {
	checkout, _, _ := setupCheckout(t)

	// At the first stage retreat signals exit and stays put.
	assert.True(t, checkout.Retreat())
	assert.Equal(t, model.StageCustomerInfo, checkout.Stage())

	fillCustomer(t, checkout)
	require.NoError(t, checkout.Advance())
	require.Equal(t, model.StageShipping, checkout.Stage())

	assert.False(t, checkout.Retreat())
	assert.Equal(t, model.StageCustomerInfo, checkout.Stage())
}

func TestPaymentMethodVariant(t *testing.T) {
	t.Run("only the active variant is validated", func(t *testing.T) {
		checkout, _, _ := setupCheckout(t)
		fillCustomer(t, checkout)
		require.NoError(t, checkout.Advance())
		fillShipping(t, checkout)
		require.NoError(t, checkout.Advance())

		// Bank fields filled, then the shopper switches to credit card;
		// the stale bank data must not satisfy the card requirements.
		require.NoError(t, checkout.SetField("paymentMethod", "bank-transfer"))
		require.NoError(t, checkout.SetField("bankName", "Banco do Brasil"))
		require.NoError(t, checkout.SetField("accountNumber", "12345-6"))
		require.NoError(t, checkout.SetField("paymentMethod", "credit-card"))

		err := checkout.Advance()
		var validation *service.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "cardName", validation.Field)

		// Switching back revalidates against the kept bank fields.
		require.NoError(t, checkout.SetField("paymentMethod", "bank-transfer"))
		require.NoError(t, checkout.Advance())
		assert.Equal(t, model.StageReview, checkout.Stage())
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		checkout, _, _ := setupCheckout(t)
		assert.Error(t, checkout.SetField("paymentMethod", "cash"))
	})
}

func TestConfirmOrder(t *testing.T) {
	t.Run("only callable from review", func(t *testing.T) {
		checkout, processor, _ := setupCheckout(t)
		_, err := checkout.ConfirmOrder()
		assert.ErrorIs(t, err, service.ErrNotAtReview)
		assert.Empty(t, processor.orders)
	})

	t.Run("produces an immutable snapshot and hands it off", func(t *testing.T) {
		checkout, processor := reviewStageCheckout(t)

		summary, err := checkout.ConfirmOrder()
		require.NoError(t, err)
		require.NotNil(t, summary)

		assert.NotEqual(t, uuid.Nil, summary.ID)
		assert.Equal(t, "Maria", summary.Customer.FirstName)
		assert.Equal(t, "Brazil", summary.Shipping.Country)
		assert.Equal(t, model.PaymentCreditCard, summary.Payment.Method)
		assert.Equal(t, "1234", summary.Payment.CardLastFour)
		assert.Empty(t, summary.Payment.BankName)
		require.Len(t, summary.Lines, 2)
		assert.Equal(t, "3060.97", summary.Totals.Total.StringFixed(2))

		require.Len(t, processor.orders, 1)
		assert.Equal(t, summary.ID, processor.orders[0].ID)
	})

	t.Run("validates only the active variant at confirmation", func(t *testing.T) {
		checkout, processor, _ := setupCheckout(t)
		fillCustomer(t, checkout)
		require.NoError(t, checkout.Advance())
		fillShipping(t, checkout)
		require.NoError(t, checkout.Advance())
		require.NoError(t, checkout.SetField("paymentMethod", "bank-transfer"))
		require.NoError(t, checkout.SetField("bankName", "Banco do Brasil"))
		require.NoError(t, checkout.SetField("accountNumber", "12345-6"))
		require.NoError(t, checkout.Advance())

		summary, err := checkout.ConfirmOrder()
		require.NoError(t, err)
		assert.Equal(t, model.PaymentBankTransfer, summary.Payment.Method)
		assert.Equal(t, "Banco do Brasil", summary.Payment.BankName)
		assert.Empty(t, summary.Payment.CardLastFour)
		assert.Len(t, processor.orders, 1)
	})
}

func reviewStageCheckout(t *testing.T) (*service.Checkout, *mockOrderProcessor) {
	t.Helper()
	checkout, processor, _ := setupCheckout(t)
	fillCustomer(t, checkout)
	require.NoError(t, checkout.Advance())
	fillShipping(t, checkout)
	require.NoError(t, checkout.Advance())
	fillCard(t, checkout)
	require.NoError(t, checkout.Advance())
	require.Equal(t, model.StageReview, checkout.Stage())
	return checkout, processor
}

var _ model.OrderProcessor = &mockOrderProcessor{}

type mockOrderProcessor struct {
	orders []model.OrderSummary
}

func (m *mockOrderProcessor) Process(summary model.OrderSummary) error {
	m.orders = append(m.orders, summary)
	return nil
}
