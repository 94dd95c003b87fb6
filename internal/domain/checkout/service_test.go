package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/cart"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/domain/payment"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRelay struct {
	calls []payment.CheckoutRequest
	url   string
	err   error
}

func (f *fakeRelay) CreateCheckout(_ context.Context, req payment.CheckoutRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.url, f.err
}

type lastOrderFailStore struct {
	storage.Store
}

func (s lastOrderFailStore) Set(ctx context.Context, key string, value []byte) error {
	if key == storage.KeyLastOrder {
		return errors.New("quota exceeded")
	}
	return s.Store.Set(ctx, key, value)
}

type fixture struct {
	svc   *Service
	carts *cart.Service
	store storage.Store
	relay *fakeRelay
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Brand: "OnCloth"},
		Payment: config.PaymentConfig{
			HostedCheckoutURL: "https://commerce.example.com/checkout/abc",
			Currency:          "USD",
		},
		Shipping: config.ShippingConfig{DiscountedRate: 10, DefaultRate: 20},
	}
}

func newFixture(t *testing.T, store storage.Store) *fixture {
	t.Helper()
	products, err := catalog.Default()
	require.NoError(t, err)

	log := logger.Discard()
	carts := cart.NewService(store, products, log, nil)
	relay := &fakeRelay{url: "https://pay.example.com/c/1"}
	svc := NewService(store, carts, products, relay, testConfig(), log)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return &fixture{svc: svc, carts: carts, store: store, relay: relay}
}

func (f *fixture) addBlack(t *testing.T, qty int) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), "oncloth-hoodie-black", "M", "Black", qty)
	require.NoError(t, err)
}

func TestCalculateTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())
	f.addBlack(t, 2)

	totals := f.svc.CalculateTotals(ctx, "Thailand")
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("99.98")))
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(10)))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("109.98")))
	assert.Equal(t, 2, totals.ItemCount)
	assert.Len(t, totals.Items, 1)

	totals = f.svc.CalculateTotals(ctx, "France")
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("119.98")))
}

func TestCalculateTotals_ShippingAtCapMatchesRelay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())
	cfg := testConfig()
	cfg.Shipping.DefaultRate = config.MaxShippingRate
	f.svc = NewService(f.store, f.carts, f.svc.catalog, f.relay, cfg, logger.Discard())
	f.addBlack(t, 1)

	totals := f.svc.CalculateTotals(ctx, "France")
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(config.MaxShippingRate)), totals.Shipping.String())

	form := validForm()
	form.Country = "France"
	_, err := f.svc.PayWithCrypto(ctx, form)
	require.NoError(t, err)
	require.Len(t, f.relay.calls, 1)
	assert.Equal(t, float64(config.MaxShippingRate), f.relay.calls[0].Shipping)
}

func TestProcessCheckout_Crypto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())
	f.addBlack(t, 1)

	result, err := f.svc.ProcessCheckout(ctx, validForm(), PaymentCrypto)
	require.NoError(t, err)
	assert.Equal(t, PaymentCrypto, result.PaymentMethod)
	assert.Equal(t, "https://commerce.example.com/checkout/abc?order="+result.Order.ID, result.RedirectURL)
	assert.Equal(t, "jane@example.com", result.Order.Customer.Email)
	assert.True(t, result.Order.Total.Equal(decimal.RequireFromString("59.99")))

	saved, err := f.svc.SavedOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, saved.ID)
	assert.True(t, saved.Total.Equal(result.Order.Total))

	f.svc.ClearSavedOrder(ctx)
	_, err = f.svc.SavedOrder(ctx)
	assert.ErrorIs(t, err, ErrNoSavedOrder)
}

func TestProcessCheckout_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())

	_, err := f.svc.ProcessCheckout(ctx, validForm(), PaymentCrypto)
	assert.ErrorIs(t, err, cart.ErrCartEmpty)

	f.addBlack(t, 1)

	_, err = f.svc.ProcessCheckout(ctx, validForm(), "card")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	form := validForm()
	form.Email = "not-an-email"
	_, err = f.svc.ProcessCheckout(ctx, form, PaymentCrypto)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "valid email address")

	_, err = f.svc.SavedOrder(ctx)
	assert.ErrorIs(t, err, ErrNoSavedOrder, "no order is created")
}

func TestPayWithCrypto_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())
	f.addBlack(t, 2)

	redirect, err := f.svc.PayWithCrypto(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/c/1", redirect.URL)

	require.Len(t, f.relay.calls, 1)
	req := f.relay.calls[0]
	assert.Equal(t, []payment.CheckoutItem{{ID: "oncloth-hoodie-black", Quantity: 2}}, req.Items)
	assert.Equal(t, float64(10), req.Shipping)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "99 Sukhumvit Road, Bangkok, 10110, Thailand", req.Customer.Address)

	last, err := f.svc.LastOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OnCloth", last.Brand)
	assert.Equal(t, int64(1700000000000), last.Timestamp)
	assert.True(t, last.Total.Equal(decimal.RequireFromString("109.98")))
	require.Len(t, last.Items, 1)
	assert.Equal(t, "Classic Black Hoodie", last.Items[0].Name)
}

func TestPayWithCrypto_InvalidEmailCreatesNoOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())
	f.addBlack(t, 1)

	form := validForm()
	form.Email = "not-an-email"
	_, err := f.svc.PayWithCrypto(ctx, form)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Problems, "Please enter a valid email address")
	assert.Empty(t, f.relay.calls)

	_, err = f.svc.LastOrder(ctx)
	assert.ErrorIs(t, err, ErrNoLastOrder)
}

func TestPayWithCrypto_UnknownProductWipesCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())

	raw := `[{"id":"retired-hoodie","name":"Retired","price":30,"size":"M","color":"Black","quantity":1}]`
	require.NoError(t, f.store.Set(ctx, storage.KeyCart, []byte(raw)))

	_, err := f.svc.PayWithCrypto(ctx, validForm())
	assert.ErrorIs(t, err, ErrCartCorrupted)
	assert.Empty(t, f.relay.calls, "relay is never called")
	assert.True(t, f.carts.IsEmpty(ctx))
}

func TestPayWithCrypto_EmptyIDWipesCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, storage.NewMemoryStore())

	raw := `[{"id":"","name":"Ghost","price":30,"size":"M","color":"Black","quantity":1}]`
	require.NoError(t, f.store.Set(ctx, storage.KeyCart, []byte(raw)))

	_, err := f.svc.PayWithCrypto(ctx, validForm())
	assert.ErrorIs(t, err, ErrCartCorrupted)
	assert.True(t, f.carts.IsEmpty(ctx))
}

func TestPayWithCrypto_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		f := newFixture(t, storage.NewMemoryStore())
		_, err := f.svc.PayWithCrypto(ctx, validForm())
		assert.ErrorIs(t, err, cart.ErrCartEmpty)
	})

	t.Run("missing variant", func(t *testing.T) {
		f := newFixture(t, storage.NewMemoryStore())
		raw := `[{"id":"oncloth-hoodie-black","name":"Classic Black Hoodie","price":49.99,"size":"","color":"Black","quantity":1}]`
		require.NoError(t, f.store.Set(ctx, storage.KeyCart, []byte(raw)))

		_, err := f.svc.PayWithCrypto(ctx, validForm())
		assert.ErrorIs(t, err, ErrVariantMissing)
		assert.False(t, f.carts.IsEmpty(ctx), "cart is kept")
	})

	t.Run("relay failure", func(t *testing.T) {
		f := newFixture(t, storage.NewMemoryStore())
		f.addBlack(t, 1)
		f.relay.err = payment.ErrRelayStatus

		_, err := f.svc.PayWithCrypto(ctx, validForm())
		assert.ErrorIs(t, err, ErrPaymentUnavailable)
		_, err = f.svc.LastOrder(ctx)
		assert.ErrorIs(t, err, ErrNoLastOrder)
	})

	t.Run("last order not saved", func(t *testing.T) {
		f := newFixture(t, lastOrderFailStore{Store: storage.NewMemoryStore()})
		f.addBlack(t, 1)

		redirect, err := f.svc.PayWithCrypto(ctx, validForm())
		assert.ErrorIs(t, err, ErrOrderNotSaved)
		assert.Nil(t, redirect)
	})
}
