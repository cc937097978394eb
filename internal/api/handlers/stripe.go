package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/BlackRoad-OS/command-center/pkg/models"
)

// MinorUnits converts a decimal currency amount to the integer
// minor-unit form Stripe requires. Rounding is half-away-from-zero:
// 29.99 → 2999, 10.005 → 1001.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Stripe.ListProducts(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, models.Product{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	RespondJSON(w, http.StatusOK, out)
}

// CreateProduct runs the product → price → payment-link saga. The three
// upstream calls are strictly sequential, each depending on the id the
// previous one returned, and there is no compensation: a failure at the
// price step leaves an orphan product upstream, a failure at the link
// step leaves an orphan product+price. Accepted, not remediated.
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		Recurring   string  `json:"recurring"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		RespondError(w, http.StatusBadRequest, "Request must include a non-empty 'name' field")
		return
	}
	if req.Price <= 0 {
		RespondError(w, http.StatusBadRequest, "Request must include a positive 'price' field")
		return
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	ctx := r.Context()

	product, err := h.Stripe.CreateProduct(ctx, req.Name, req.Description)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	unitAmount := MinorUnits(req.Price)
	price, err := h.Stripe.CreatePrice(ctx, product.ID, unitAmount, req.Currency, req.Recurring)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	link, err := h.Stripe.CreatePaymentLink(ctx, price.ID, 1)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("product", product.ID).
		Str("price", price.ID).
		Int64("unit_amount", unitAmount).
		Msg("Product created with payment link")

	RespondJSON(w, http.StatusCreated, map[string]any{
		"product": models.Product{ID: product.ID, Name: product.Name, Description: product.Description},
		"price": models.Price{
			ID:         price.ID,
			Amount:     req.Price,
			UnitAmount: price.UnitAmount,
			Currency:   price.Currency,
			Recurring:  req.Recurring,
		},
		"payment_link": link.URL,
	})
}

func (h *Handlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Stripe.ListCustomers(r.Context())
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, models.Customer{ID: c.ID, Email: c.Email, Name: c.Name})
	}
	RespondJSON(w, http.StatusOK, out)
}
