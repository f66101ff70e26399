package transport

import (
	"time"

	"github.com/ralphmarondev/varicacao/pkg/storefront/app"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
)

type errorView struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
	Field string `json:"field,omitempty"`
}

type productView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           string            `json:"price"`
	Image           string            `json:"image,omitempty"`
	Category        string            `json:"category"`
	Availability    string            `json:"availability"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	CompatibleParts []string          `json:"compatiblePartIds,omitempty"`
}

type productListView struct {
	Products []productView `json:"products"`
}

type productDetailView struct {
	productView
	CompatibleParts []productView `json:"compatibleParts,omitempty"`
}

func newProductView(p model.Product) productView {
	return productView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price.StringFixed(2),
		Image:           p.Image,
		Category:        p.Category.String(),
		Availability:    p.Availability.String(),
		Specifications:  p.Specifications,
		CompatibleParts: p.CompatibleParts,
	}
}

type cartLineView struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type totalsView struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type cartView struct {
	Lines     []cartLineView `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Totals    totalsView     `json:"totals"`
}

func newCartView(session *app.Session) cartView {
	cart := session.Cart()
	view := cartView{
		Lines:     newCartLineViews(cart.Lines),
		ItemCount: cart.ItemCount(),
		Totals:    newTotalsView(session.Totals()),
	}
	return view
}

func newCartLineViews(lines []model.CartLine) []cartLineView {
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, cartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category.String(),
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}
	return views
}

func newTotalsView(totals model.OrderTotals) totalsView {
	return totalsView{
		Subtotal: totals.Subtotal.StringFixed(2),
		Shipping: totals.Shipping.StringFixed(2),
		Tax:      totals.Tax.StringFixed(2),
		Total:    totals.Total.StringFixed(2),
	}
}

type checkoutFormView struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Notes         string `json:"notes"`
}

type checkoutView struct {
	Stage  string           `json:"stage"`
	Form   checkoutFormView `json:"form"`
	Lines  []cartLineView   `json:"lines"`
	Totals totalsView       `json:"totals"`
}

func newCheckoutView(checkout *service.Checkout) checkoutView {
	form := checkout.Form()
	return checkoutView{
		Stage: checkout.Stage().String(),
		Form: checkoutFormView{
			FirstName:     form.Customer.FirstName,
			LastName:      form.Customer.LastName,
			Email:         form.Customer.Email,
			Phone:         form.Customer.Phone,
			Address:       form.Shipping.Address,
			City:          form.Shipping.City,
			State:         form.Shipping.State,
			ZipCode:       form.Shipping.PostalCode,
			Country:       form.Shipping.Country,
			PaymentMethod: string(form.Method),
			CardName:      form.Card.CardName,
			CardNumber:    form.Card.CardNumber,
			ExpiryDate:    form.Card.Expiry,
			CVV:           form.Card.CVV,
			BankName:      form.Bank.BankName,
			AccountNumber: form.Bank.AccountNumber,
			Notes:         form.Notes,
		},
		Lines:  newCartLineViews(checkout.Lines()),
		Totals: newTotalsView(checkout.Totals()),
	}
}

type orderPaymentView struct {
	Method       string `json:"method"`
	CardName     string `json:"cardName,omitempty"`
	CardLastFour string `json:"cardLastFour,omitempty"`
	BankName     string `json:"bankName,omitempty"`
}

type orderView struct {
	OrderID   string           `json:"orderId"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Address   string           `json:"address"`
	City      string           `json:"city"`
	State     string           `json:"state"`
	ZipCode   string           `json:"zipCode"`
	Country   string           `json:"country"`
	Payment   orderPaymentView `json:"payment"`
	Notes     string           `json:"notes,omitempty"`
	Lines     []cartLineView   `json:"lines"`
	Totals    totalsView       `json:"totals"`
	CreatedAt string           `json:"createdAt"`
}

func newOrderView(summary *model.OrderSummary) orderView {
	return orderView{
		OrderID:   summary.ID.String(),
		FirstName: summary.Customer.FirstName,
		LastName:  summary.Customer.LastName,
		Email:     summary.Customer.Email,
		Phone:     summary.Customer.Phone,
		Address:   summary.Shipping.Address,
		City:      summary.Shipping.City,
		State:     summary.Shipping.State,
		ZipCode:   summary.Shipping.PostalCode,
		Country:   summary.Shipping.Country,
		Payment: orderPaymentView{
			Method:       string(summary.Payment.Method),
			CardName:     summary.Payment.CardName,
			CardLastFour: summary.Payment.CardLastFour,
			BankName:     summary.Payment.BankName,
		},
		Notes:     summary.Notes,
		Lines:     newCartLineViews(summary.Lines),
		Totals:    newTotalsView(summary.Totals),
		CreatedAt: summary.CreatedAt.Format(time.RFC3339),
	}
}
