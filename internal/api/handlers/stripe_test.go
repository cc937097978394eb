package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/command-center/internal/api/handlers"
	"github.com/BlackRoad-OS/command-center/internal/notify"
	"github.com/BlackRoad-OS/command-center/internal/providers/stripe"
	"github.com/BlackRoad-OS/command-center/internal/store"
)

// fakeStripe records the saga's calls in order.
type fakeStripe struct {
	calls []string

	priceProduct string
	unitAmount   int64
	currency     string
	interval     string
	linkPriceID  string
	linkQuantity int

	priceErr error
}

func (f *fakeStripe) ListProducts(ctx context.Context) ([]stripe.Product, error) {
	return []stripe.Product{}, nil
}

func (f *fakeStripe) CreateProduct(ctx context.Context, name, description string) (*stripe.Product, error) {
	f.calls = append(f.calls, "product")
	return &stripe.Product{ID: "prod_123", Name: name, Description: description}, nil
}

func (f *fakeStripe) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency, interval string) (*stripe.Price, error) {
	f.calls = append(f.calls, "price")
	if f.priceErr != nil {
		return nil, f.priceErr
	}
	f.priceProduct = productID
	f.unitAmount = unitAmount
	f.currency = currency
	f.interval = interval
	return &stripe.Price{ID: "price_123", UnitAmount: unitAmount, Currency: currency}, nil
}

func (f *fakeStripe) CreatePaymentLink(ctx context.Context, priceID string, quantity int) (*stripe.PaymentLink, error) {
	f.calls = append(f.calls, "payment_link")
	f.linkPriceID = priceID
	f.linkQuantity = quantity
	return &stripe.PaymentLink{ID: "plink_123", URL: "https://buy.stripe.com/test_123"}, nil
}

func (f *fakeStripe) ListCustomers(ctx context.Context) ([]stripe.Customer, error) {
	return []stripe.Customer{}, nil
}

func newStripeHandlers(st *fakeStripe) *handlers.Handlers {
	return handlers.New(nil, st, nil, nil, store.NewMemoryStore(), notify.NewService(), "test", nil)
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{29.99, 2999},
		{10.00, 1000},
		{0.01, 1},
		{10.004, 1000},
		// Half-away-from-zero: the boundary value rounds up.
		{10.005, 1001},
		{1234.56, 123456},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handlers.MinorUnits(tt.amount), "MinorUnits(%v)", tt.amount)
	}
}

func TestCreateProduct_Saga(t *testing.T) {
	st := &fakeStripe{}
	h := newStripeHandlers(st)

	rec := postJSON(t, h.CreateProduct, map[string]any{
		"name":      "Pro Plan",
		"price":     29.99,
		"recurring": "month",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	// Three sequential upstream calls, each feeding the next.
	assert.Equal(t, []string{"product", "price", "payment_link"}, st.calls)
	assert.Equal(t, "prod_123", st.priceProduct)
	assert.Equal(t, int64(2999), st.unitAmount)
	assert.Equal(t, "usd", st.currency)
	assert.Equal(t, "month", st.interval)
	assert.Equal(t, "price_123", st.linkPriceID)
	assert.Equal(t, 1, st.linkQuantity)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	product := resp["product"].(map[string]any)
	assert.Equal(t, "prod_123", product["id"])

	price := resp["price"].(map[string]any)
	assert.Equal(t, 29.99, price["amount"])
	assert.Equal(t, float64(2999), price["unit_amount"])

	assert.Equal(t, "https://buy.stripe.com/test_123", resp["payment_link"])
}

func TestCreateProduct_NoCompensationOnPriceFailure(t *testing.T) {
	st := &fakeStripe{priceErr: assert.AnError}
	h := newStripeHandlers(st)

	rec := postJSON(t, h.CreateProduct, map[string]any{
		"name":  "Pro Plan",
		"price": 29.99,
	})

	// The product call already happened and is left in place upstream.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []string{"product", "price"}, st.calls)
}

func TestCreateProduct_Validation(t *testing.T) {
	h := newStripeHandlers(&fakeStripe{})

	rec := postJSON(t, h.CreateProduct, map[string]any{"price": 29.99})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.CreateProduct, map[string]any{"name": "Pro Plan"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
