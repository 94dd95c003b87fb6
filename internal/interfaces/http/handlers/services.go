// internal/interfaces/http/handlers/services.go
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/cart"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/domain/checkout"
	"github.com/oncloth/storefront/internal/domain/payment"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// Services builds session-scoped domain services for each request
type Services struct {
	store   storage.Store
	catalog *catalog.Catalog
	relay   payment.Relay
	config  *config.Config
	log     logrus.FieldLogger
}

// NewServices creates a new service factory
func NewServices(store storage.Store, products *catalog.Catalog, relay payment.Relay, cfg *config.Config, log logrus.FieldLogger) *Services {
	return &Services{
		store:   store,
		catalog: products,
		relay:   relay,
		config:  cfg,
		log:     log,
	}
}

// Catalog returns the shared product catalog
func (s *Services) Catalog() *catalog.Catalog {
	return s.catalog
}

// Cart returns a cart service for the request's session. Every mutation
// refreshes the X-Cart-Count response header.
func (s *Services) Cart(c *gin.Context) *cart.Service {
	store, log := s.session(c)
	return s.newCart(c, store, log)
}

// Checkout returns a checkout service for the request's session
func (s *Services) Checkout(c *gin.Context) *checkout.Service {
	store, log := s.session(c)
	return checkout.NewService(store, s.newCart(c, store, log), s.catalog, s.relay, s.config, log)
}

func (s *Services) newCart(c *gin.Context, store storage.Store, log logrus.FieldLogger) *cart.Service {
	return cart.NewService(store, s.catalog, log, func(_ context.Context, count int) {
		c.Header(middleware.CartCountHeader, strconv.Itoa(count))
	})
}

func (s *Services) session(c *gin.Context) (storage.Store, logrus.FieldLogger) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		// Nothing outlives this request without a session
		sessionID = uuid.NewString()
		s.log.Error("Request reached a session handler without a session")
	}

	log := s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
	return storage.Namespace(s.store, storage.SessionPrefix(sessionID)), log
}
