//go:build wireinject

package api

import (
	"context"

	"github.com/google/wire"

	"github.com/nkaewam/storefront/internal/cart"
	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/health"
	"github.com/nkaewam/storefront/internal/logger"
	"github.com/nkaewam/storefront/internal/product"
)

// ProviderSet wires configuration through to the HTTP server
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	logger.ProvideLogger,
	ProvidePool,
	ProvideFiberApp,

	// Storage
	ProvideProductRepository,
	ProvideCartRepository,

	// Product
	product.ProvideService,
	product.ProvideHandler,

	// Cart
	cart.ProvideService,
	cart.ProvideHandler,

	// Health
	health.ProvideRepository,
	health.ProvideService,
	health.ProvideHandler,

	// Adapters
	ProvideProductLookup,

	// Server
	ProvideServer,
)

// InitializeServer initializes the complete server with all dependencies
func InitializeServer(ctx context.Context, cfg *config.Config) (*Server, func(), error) {
	wire.Build(ProviderSet)
	return &Server{}, nil, nil
}
