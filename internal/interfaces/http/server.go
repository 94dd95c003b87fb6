// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/domain/payment"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/interfaces/http/handlers"
	"github.com/oncloth/storefront/internal/interfaces/http/middleware"
	"github.com/oncloth/storefront/internal/interfaces/http/routes"
	"github.com/oncloth/storefront/internal/pkg/auth"
	"github.com/oncloth/storefront/internal/pkg/pdf"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const maxRequestBytes = 1 << 20

// HealthChecker is a dependency the health endpoint pings
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Dependencies are the collaborators the server routes requests to. A nil
// Redis client disables rate limiting.
type Dependencies struct {
	Store   storage.Store
	Catalog *catalog.Catalog
	Relay   payment.Relay
	Redis   *redis.Client
	Checks  map[string]HealthChecker
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	log        *logrus.Logger
	deps       Dependencies
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with routes installed
func NewServer(cfg *config.Config, log *logrus.Logger, deps Dependencies) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:    cfg,
		log:       log,
		deps:      deps,
		gin:       gin.New(),
		startedAt: time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Handler exposes the routed engine
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.log.WithFields(logrus.Fields{
		"port":    s.config.Server.Port,
		"storage": s.config.Storage.Driver,
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.log.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.log))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.config, s.deps.Redis, s.log))
	s.gin.Use(middleware.RequestSizeLimit(maxRequestBytes))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	apiV1 := s.gin.Group("/api/v1")
	apiV1.Use(middleware.Session(auth.NewSessionManager(s.config), s.config.Session.Header, s.log))

	services := handlers.NewServices(s.deps.Store, s.deps.Catalog, s.deps.Relay, s.config, s.log)
	routes.SetupRoutes(apiV1, services, pdf.NewReceiptService(s.config.App.Brand))
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	for name, check := range s.deps.Checks {
		if err := check.Health(ctx); err != nil {
			s.log.WithError(err).WithField("dependency", name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  name + " ping failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"storage":     s.config.Storage.Driver,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
		"products":  len(s.deps.Catalog.All()),
	})
}
