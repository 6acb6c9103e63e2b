package api

import (
	"context"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nkaewam/storefront/internal/cart"
	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/health"
	"github.com/nkaewam/storefront/internal/port"
	"github.com/nkaewam/storefront/internal/product"
	"github.com/nkaewam/storefront/internal/seed"
)

// Server owns the Fiber app and every handler it routes to
type Server struct {
	cfg    *config.Config
	app    *fiber.App
	logger *zap.Logger

	productHandler *product.Handler
	cartHandler    *cart.Handler
	healthHandler  *health.Handler

	products port.ProductRepository
}

// ProvideServer creates the server and registers its routes
func ProvideServer(
	cfg *config.Config,
	app *fiber.App,
	logger *zap.Logger,
	productHandler *product.Handler,
	cartHandler *cart.Handler,
	healthHandler *health.Handler,
	products port.ProductRepository,
) *Server {
	s := &Server{
		cfg:            cfg,
		app:            app,
		logger:         logger,
		productHandler: productHandler,
		cartHandler:    cartHandler,
		healthHandler:  healthHandler,
		products:       products,
	}
	s.RegisterRoutes(app)
	return s
}

// App returns the underlying Fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Routes lists the registered method/path pairs, middleware excluded
func (s *Server) Routes() []fiber.Route {
	return s.app.GetRoutes(true)
}

// Bootstrap loads the configured seed file into the product store
func (s *Server) Bootstrap(ctx context.Context) error {
	path := s.cfg.Catalog.SeedFile
	if path == "" {
		return nil
	}

	fx, err := seed.Load(path)
	if err != nil {
		return err
	}
	unit, err := s.cfg.Catalog.Unit()
	if err != nil {
		return err
	}

	n, err := seed.Apply(ctx, s.products, fx, unit)
	if err != nil {
		return fmt.Errorf("failed to seed catalog from %s: %w", path, err)
	}

	s.logger.Info("Catalog seeded", zap.String("file", path), zap.Int("products", n))
	return nil
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Server.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// within server.shutdown_timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server listening", zap.String("address", ln.Addr().String()))
		if err := s.app.Listener(ln); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
		if err := s.app.ShutdownWithTimeout(s.cfg.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
