package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/ralphmarondev/varicacao/pkg/storefront/app"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/service"
)

type Handler struct {
	session *app.Session
	catalog service.CatalogService
}

func Router(session *app.Session, catalog service.CatalogService) http.Handler {
	handler := &Handler{session: session, catalog: catalog}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", handler.listProducts).Methods(http.MethodGet)
	s.HandleFunc("/products/{ID}", handler.getProduct).Methods(http.MethodGet)

	s.HandleFunc("/cart", handler.getCart).Methods(http.MethodGet)
	s.HandleFunc("/cart/items", handler.addCartItem).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{ID}", handler.updateCartItem).Methods(http.MethodPut)
	s.HandleFunc("/cart/items/{ID}", handler.removeCartItem).Methods(http.MethodDelete)

	s.HandleFunc("/checkout", handler.startCheckout).Methods(http.MethodPost)
	s.HandleFunc("/checkout", handler.getCheckout).Methods(http.MethodGet)
	s.HandleFunc("/checkout/form", handler.patchCheckoutForm).Methods(http.MethodPatch)
	s.HandleFunc("/checkout/advance", handler.advanceCheckout).Methods(http.MethodPost)
	s.HandleFunc("/checkout/back", handler.retreatCheckout).Methods(http.MethodPost)
	s.HandleFunc("/checkout/confirm", handler.confirmOrder).Methods(http.MethodPost)

	return logMiddleware(r)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := service.CatalogQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Sort:     service.SortKey(r.URL.Query().Get("sort")),
	}
	if query.Sort == "" {
		query.Sort = service.SortNameAsc
	}

	products, err := h.catalog.ListProducts(query)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	writeJSON(w, http.StatusOK, productListView{Products: views})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ID"]

	product, err := h.catalog.FindProduct(id)
	if err != nil {
		writeError(w, err)
		return
	}

	view := productDetailView{productView: newProductView(*product)}
	if product.Category == model.Machine {
		parts, err := h.catalog.CompatibleParts(id)
		if err != nil {
			writeError(w, err)
			return
		}
		for _, part := range parts {
			view.CompatibleParts = append(view.CompatibleParts, newProductView(part))
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartView(h.session))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string          `json:"productId"`
		Quantity  json.RawMessage `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quantity := 1
	if len(body.Quantity) > 0 {
		n, ok := parseQuantity(body.Quantity)
		if !ok || n < 1 {
			writeError(w, service.ErrInvalidQuantity)
			return
		}
		quantity = n
	}

	if err := h.session.AddToCart(body.ProductID, quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(h.session))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ID"]

	var body struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Forgiving-input policy for interactive quantity controls: anything
	// that does not parse as a number >= 1 becomes 1.
	quantity, ok := parseQuantity(body.Quantity)
	if !ok || quantity < 1 {
		quantity = 1
	}

	if err := h.session.SetQuantity(id, quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(h.session))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.session.RemoveFromCart(mux.Vars(r)["ID"])
	writeJSON(w, http.StatusOK, newCartView(h.session))
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.session.StartCheckout()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCheckoutView(checkout))
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.session.Checkout()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCheckoutView(checkout))
}

func (h *Handler) patchCheckoutForm(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.session.Checkout()
	if err != nil {
		writeError(w, err)
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for name, value := range fields {
		if err := checkout.SetField(name, value); err != nil {
			writeErrorMessage(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, newCheckoutView(checkout))
}

func (h *Handler) advanceCheckout(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.session.Checkout()
	if err != nil {
		writeError(w, err)
		return
	}

	if err := checkout.Advance(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCheckoutView(checkout))
}

func (h *Handler) retreatCheckout(w http.ResponseWriter, r *http.Request) {
	exited, err := h.session.Retreat()
	if err != nil {
		writeError(w, err)
		return
	}
	if exited {
		writeJSON(w, http.StatusOK, map[string]bool{"exited": true})
		return
	}

	checkout, err := h.session.Checkout()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCheckoutView(checkout))
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	summary, err := h.session.ConfirmOrder()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderView(summary))
}

// parseQuantity accepts a JSON number (truncating any fraction) or a
// numeric string, the two shapes quantity inputs arrive in.
func parseQuantity(raw json.RawMessage) (int, bool) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return 0, false
	}
	text = strings.Trim(text, `"`)

	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func writeError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusUnprocessableEntity, errorView{
			Error: validation.Error(),
			Stage: validation.Stage.String(),
			Field: validation.Field,
		})
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, app.ErrNoActiveCheckout):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrProductUnavailable):
		writeErrorMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, app.ErrEmptyCart),
		errors.Is(err, service.ErrAlreadyAtReview),
		errors.Is(err, service.ErrNotAtReview):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	default:
		log.WithError(err).Error("request failed")
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorView{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("write response body")
	}
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
