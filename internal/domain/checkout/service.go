// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/cart"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/domain/payment"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentCrypto is the only supported payment method
const PaymentCrypto = "crypto"

// Result is the outcome of ProcessCheckout
type Result struct {
	PaymentMethod string `json:"payment_method"`
	RedirectURL   string `json:"redirect_url"`
	Order         Order  `json:"order"`
}

// Redirect is the outcome of PayWithCrypto
type Redirect struct {
	URL       string    `json:"url"`
	LastOrder LastOrder `json:"last_order"`
}

// Service orchestrates checkout for one session
type Service struct {
	store   storage.Store
	carts   *cart.Service
	catalog *catalog.Catalog
	relay   payment.Relay
	rates   ShippingRates

	brand       string
	currency    string
	checkoutURL string

	log logrus.FieldLogger
	now func() time.Time
}

// NewService creates a checkout service over a session-scoped store
func NewService(store storage.Store, carts *cart.Service, products *catalog.Catalog, relay payment.Relay, cfg *config.Config, log logrus.FieldLogger) *Service {
	return &Service{
		store:   store,
		carts:   carts,
		catalog: products,
		relay:   relay,
		rates: ShippingRates{
			Discounted: money.FromFloat(cfg.Shipping.DiscountedRate),
			Default:    money.FromFloat(cfg.Shipping.DefaultRate),
		},
		brand:       cfg.App.Brand,
		currency:    cfg.Payment.Currency,
		checkoutURL: cfg.Payment.HostedCheckoutURL,
		log:         log,
		now:         time.Now,
	}
}

// Shipping returns the flat rate for country
func (s *Service) Shipping(country string) decimal.Decimal {
	return s.rates.For(country)
}

// CalculateTotals prices the current cart for a destination country
func (s *Service) CalculateTotals(ctx context.Context, country string) Totals {
	summary := s.carts.Summary(ctx, s.rates.For(country))

	return Totals{
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
		ItemCount: summary.ItemCount,
		Items:     summary.Items,
	}
}

// SaveOrder writes order to the currentOrder slot, replacing any previous one
func (s *Service) SaveOrder(ctx context.Context, order Order) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyCurrentOrder, order); err != nil {
		s.log.WithError(err).WithField("order_id", order.ID).Error("Failed to save order")
		return fmt.Errorf("%w: %v", ErrOrderNotSaved, err)
	}
	return nil
}

// SavedOrder reads the currentOrder slot
func (s *Service) SavedOrder(ctx context.Context) (*Order, error) {
	var order Order
	if err := s.readSlot(ctx, storage.KeyCurrentOrder, &order); err != nil {
		return nil, ErrNoSavedOrder
	}
	return &order, nil
}

// ClearSavedOrder empties the currentOrder slot. Failures are logged only.
func (s *Service) ClearSavedOrder(ctx context.Context) {
	if err := s.store.Delete(ctx, storage.KeyCurrentOrder); err != nil {
		s.log.WithError(err).Error("Failed to clear order")
	}
}

// LastOrder reads the lastOrder slot
func (s *Service) LastOrder(ctx context.Context) (*LastOrder, error) {
	var order LastOrder
	if err := s.readSlot(ctx, storage.KeyLastOrder, &order); err != nil {
		return nil, ErrNoLastOrder
	}
	return &order, nil
}

func (s *Service) readSlot(ctx context.Context, key string, dst any) error {
	err := storage.GetJSON(ctx, s.store, key, dst)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.log.WithError(err).WithField("key", key).Warn("Failed to read order")
	}
	return err
}

// PrepareCryptoPayment saves order and returns the hosted checkout URL
// carrying the order reference
func (s *Service) PrepareCryptoPayment(ctx context.Context, order Order) (string, error) {
	if err := s.SaveOrder(ctx, order); err != nil {
		return "", err
	}
	return s.checkoutURL + "?order=" + url.QueryEscape(order.ID), nil
}

// ProcessCheckout validates the cart and form, prices the order and
// prepares payment with method
func (s *Service) ProcessCheckout(ctx context.Context, form CustomerForm, method string) (*Result, error) {
	if err := s.carts.Validate(ctx); err != nil {
		return nil, err
	}

	customer := SanitizeForm(form)
	if err := ValidateForm(customer); err != nil {
		return nil, err
	}

	totals := s.CalculateTotals(ctx, customer.Country)
	order := newOrder(customer, totals, s.currency, s.now())

	if method != PaymentCrypto {
		return nil, ErrInvalidPaymentMethod
	}

	redirectURL, err := s.PrepareCryptoPayment(ctx, order)
	if err != nil {
		return nil, err
	}

	return &Result{
		PaymentMethod: PaymentCrypto,
		RedirectURL:   redirectURL,
		Order:         order,
	}, nil
}

// PayWithCrypto sends the cart to the payment relay and records the
// completed order. A cart line naming no known product wipes the cart.
func (s *Service) PayWithCrypto(ctx context.Context, form CustomerForm) (*Redirect, error) {
	items := s.carts.Items(ctx)
	if len(items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, s.wipeCorruptedCart(ctx, item)
		}
		if _, ok := s.catalog.Lookup(item.ID); !ok {
			return nil, s.wipeCorruptedCart(ctx, item)
		}
	}

	for _, item := range items {
		if item.Size == "" || item.Color == "" {
			return nil, ErrVariantMissing
		}
	}

	customer := SanitizeForm(form)
	if err := ValidateForm(customer); err != nil {
		return nil, err
	}

	shipping := s.rates.For(customer.Country)

	req := payment.CheckoutRequest{
		Items:    make([]payment.CheckoutItem, 0, len(items)),
		Shipping: money.Float(shipping),
		Currency: s.currency,
		Customer: payment.CheckoutCustomer{
			Name:    customer.Name,
			Email:   customer.Email,
			Phone:   customer.Phone,
			Address: payment.FormatAddress(customer.Address, customer.City, customer.State, customer.PostalCode, customer.Country),
		},
	}
	for _, item := range items {
		req.Items = append(req.Items, payment.CheckoutItem{ID: item.ID, Quantity: item.Quantity})
	}

	checkoutURL, err := s.relay.CreateCheckout(ctx, req)
	if err != nil {
		s.log.WithError(err).Error("Crypto payment failed")
		return nil, ErrPaymentUnavailable
	}

	last := LastOrder{
		Items:     lastOrderItems(items),
		Shipping:  shipping,
		Total:     cart.Subtotal(items).Add(shipping),
		Brand:     s.brand,
		Timestamp: s.now().UnixMilli(),
		Customer:  customer,
	}
	if err := storage.SetJSON(ctx, s.store, storage.KeyLastOrder, last); err != nil {
		s.log.WithError(err).Error("Failed to save last order")
		return nil, ErrOrderNotSaved
	}

	return &Redirect{URL: checkoutURL, LastOrder: last}, nil
}

func (s *Service) wipeCorruptedCart(ctx context.Context, item cart.Item) error {
	s.log.WithField("product_id", item.ID).Error("Cart contains an unknown product, clearing cart")
	if err := s.carts.Clear(ctx); err != nil {
		s.log.WithError(err).Error("Failed to clear corrupted cart")
	}
	return ErrCartCorrupted
}
