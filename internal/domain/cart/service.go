// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/oncloth/storefront/internal/pkg/security"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var maxShipping = decimal.NewFromInt(config.MaxShippingRate)

// BadgeFunc receives the fresh item count after every cart mutation
type BadgeFunc func(ctx context.Context, count int)

// Service handles cart business logic against a session's storage
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
	log     logrus.FieldLogger
	badge   BadgeFunc
}

// NewService creates a new cart service. badge may be nil.
func NewService(store storage.Store, products *catalog.Catalog, log logrus.FieldLogger, badge BadgeFunc) *Service {
	return &Service{
		store:   store,
		catalog: products,
		log:     log,
		badge:   badge,
	}
}

// Items reads the persisted cart. Unreadable or malformed data yields an
// empty cart.
func (s *Service) Items(ctx context.Context) []Item {
	raw, err := s.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).Warn("Failed to read cart")
		}
		return []Item{}
	}

	items, err := decodeItems(raw)
	if err != nil {
		s.log.WithError(err).Warn("Discarding unreadable cart")
	}
	return items
}

// Save sanitizes and persists items, replacing the stored cart
func (s *Service) Save(ctx context.Context, items []Item) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyCart, sanitizeAll(items)); err != nil {
		s.log.WithError(err).Error("Failed to save cart")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	s.notify(ctx)
	return nil
}

// AddItem adds quantity units of a product variant, merging with an
// existing line for the same (id, size, color). It returns the new total
// item count.
func (s *Service) AddItem(ctx context.Context, productID, size, color string, quantity int) (int, error) {
	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return 0, ErrInvalidProduct
	}
	if !s.catalog.IsValidVariant(productID, size, color) {
		return 0, ErrInvalidVariant
	}
	qty, ok := security.SanitizeQuantity(quantity)
	if !ok {
		return 0, ErrInvalidQuantity
	}

	items := s.Items(ctx)

	merged := false
	for i := range items {
		if !items[i].sameVariant(product.ID, size, color) {
			continue
		}
		if items[i].Quantity+qty > security.MaxQuantity {
			return 0, ErrQuantityExceeded
		}
		items[i].Quantity += qty
		merged = true
		break
	}

	if !merged {
		items = append(items, Item{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Size:     size,
			Color:    color,
			Quantity: qty,
			Image:    product.PrimaryImage(),
		})
	}

	if err := s.Save(ctx, items); err != nil {
		return 0, err
	}
	return Count(items), nil
}

// RemoveItem deletes the line at index
func (s *Service) RemoveItem(ctx context.Context, index int) error {
	items := s.Items(ctx)
	if index < 0 || index >= len(items) {
		return ErrInvalidPosition
	}

	items = append(items[:index], items[index+1:]...)
	return s.Save(ctx, items)
}

// UpdateQuantity sets the quantity of the line at index
func (s *Service) UpdateQuantity(ctx context.Context, index, quantity int) error {
	qty, ok := security.SanitizeQuantity(quantity)
	if !ok {
		return ErrInvalidQuantity
	}

	items := s.Items(ctx)
	if index < 0 || index >= len(items) {
		return ErrInvalidPosition
	}

	items[index].Quantity = qty
	return s.Save(ctx, items)
}

// Clear removes the cart from storage
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeyCart); err != nil {
		s.log.WithError(err).Error("Failed to clear cart")
		return fmt.Errorf("%w: %v", ErrClearFailed, err)
	}
	s.notify(ctx)
	return nil
}

// ItemCount returns the sum of quantities
func (s *Service) ItemCount(ctx context.Context) int {
	return Count(s.Items(ctx))
}

// Subtotal returns the sum of price * quantity
func (s *Service) Subtotal(ctx context.Context) decimal.Decimal {
	return Subtotal(s.Items(ctx))
}

// IsEmpty reports whether the cart has no lines
func (s *Service) IsEmpty(ctx context.Context) bool {
	return len(s.Items(ctx)) == 0
}

// Summary derives counts and totals from one read of the cart. Shipping
// outside [0, 1000] is treated as zero.
func (s *Service) Summary(ctx context.Context, shipping decimal.Decimal) Summary {
	if !money.InRange(shipping, money.Zero, maxShipping) {
		shipping = money.Zero
	}

	items := s.Items(ctx)
	subtotal := Subtotal(items)

	return Summary{
		Items:     items,
		ItemCount: Count(items),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal.Add(shipping),
	}
}

// Validate checks the stored cart against the live catalog. The first
// failing line is reported.
func (s *Service) Validate(ctx context.Context) error {
	items := s.Items(ctx)
	if len(items) == 0 {
		return ErrCartEmpty
	}

	for _, item := range items {
		product, ok := s.catalog.Lookup(item.ID)
		if !ok || !product.Active {
			return &ItemError{Name: item.Name, Err: ErrProductUnavailable}
		}
		if !s.catalog.IsValidVariant(item.ID, item.Size, item.Color) {
			return &ItemError{Name: item.Name, Err: ErrVariantUnavailable}
		}
		if !product.Price.Equal(item.Price) {
			return &ItemError{Name: item.Name, Err: ErrPriceChanged}
		}
	}
	return nil
}

func (s *Service) notify(ctx context.Context) {
	if s.badge != nil {
		s.badge(ctx, s.ItemCount(ctx))
	}
}
