// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oncloth/storefront/internal/config"
	"github.com/oncloth/storefront/internal/domain/catalog"
	"github.com/oncloth/storefront/internal/domain/payment"
	"github.com/oncloth/storefront/internal/infrastructure/database/postgres"
	"github.com/oncloth/storefront/internal/infrastructure/database/redis"
	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"github.com/oncloth/storefront/internal/interfaces/http"
	"github.com/oncloth/storefront/internal/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const purgeInterval = time.Hour

// backend is the opened storage driver plus everything that must be torn
// down with it
type backend struct {
	store  storage.Store
	redis  *goredis.Client
	checks map[string]http.HealthChecker
	close  []func() error
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront")

	products, err := loadCatalog(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to load catalog")
	}
	log.WithField("products", len(products.All())).Info("Catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage")
	}
	defer b.shutdown(log)

	server := http.NewServer(cfg, log, http.Dependencies{
		Store:   b.store,
		Catalog: products,
		Relay:   payment.NewRelayClient(cfg.Payment, log),
		Redis:   b.redis,
		Checks:  b.checks,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("HTTP server failed")
		}
		return
	case <-ctx.Done():
	}

	log.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.File != "" {
		return catalog.LoadFile(cfg.Catalog.File)
	}
	return catalog.Default()
}

func openBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*backend, error) {
	b := &backend{checks: make(map[string]http.HealthChecker)}

	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := redis.NewConnection(cfg, log)
		if err != nil {
			return nil, err
		}
		b.store = redis.NewStore(client.GetClient(), cfg.Storage.TTL)
		b.redis = client.GetClient()
		b.checks["redis"] = client
		b.close = append(b.close, client.Close)

	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			return nil, err
		}
		b.close = append(b.close, db.Close)

		migration := postgres.NewMigration(db.GetDB(), log)
		if err := migration.RunAutoMigrations(); err != nil {
			b.shutdown(log)
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.WithError(err).Warn("Index creation failed")
		}

		store := postgres.NewStore(db.GetDB(), cfg.Storage.TTL)
		b.store = store
		b.checks["database"] = db
		if cfg.Storage.TTL > 0 {
			go purgeExpired(ctx, store, log)
		}

	default:
		log.Warn("Using in-memory storage, sessions will not survive a restart")
		b.store = storage.NewMemoryStore()
	}

	return b, nil
}

func purgeExpired(ctx context.Context, store *postgres.Store, log logrus.FieldLogger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.PurgeExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("Failed to purge expired entries")
				continue
			}
			log.WithField("removed", removed).Debug("Purged expired entries")
		}
	}
}

func (b *backend) shutdown(log logrus.FieldLogger) {
	for _, closeFn := range b.close {
		if err := closeFn(); err != nil {
			log.WithError(err).Warn("Failed to close storage")
		}
	}
	b.close = nil
}
