package api

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nkaewam/storefront/internal/cart"
	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/port"
	"github.com/nkaewam/storefront/internal/postgres"
	"github.com/nkaewam/storefront/internal/product"
)

// ProvidePool opens and migrates the Postgres pool when storage.driver is
// postgres. It returns a nil pool for the in-memory driver.
func ProvidePool(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, func(), error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		return nil, func() {}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.Storage.Postgres.DSN, cfg.Storage.Postgres.MaxConns)
	if err != nil {
		return nil, nil, err
	}

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("Postgres storage ready", zap.Strings("migrations", applied))

	return pool, pool.Close, nil
}

// ProvideProductRepository picks the product store for the configured driver
func ProvideProductRepository(pool *pgxpool.Pool) port.ProductRepository {
	if pool == nil {
		return product.ProvideRepository()
	}
	return postgres.NewProductRepository(pool)
}

// ProvideCartRepository picks the cart store for the configured driver
func ProvideCartRepository(pool *pgxpool.Pool) port.CartRepository {
	if pool == nil {
		return cart.ProvideRepository()
	}
	return postgres.NewCartRepository(pool)
}
