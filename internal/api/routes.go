package api

import (
	"os"
	"strings"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "github.com/nkaewam/storefront/docs"
)

// RegisterRoutes registers all HTTP routes with the Fiber app. The API is
// served at the root and again under server.base_path.
func (s *Server) RegisterRoutes(app *fiber.App) {
	s.registerAPI(app)
	if base := strings.TrimSuffix(s.cfg.Server.BasePath, "/"); base != "" {
		s.registerAPI(app.Group(base))
	}

	app.Get("/openapi.json", s.getOpenAPI)
	s.registerSwaggerUI(app)

	s.logger.Info("All routes registered successfully")
}

func (s *Server) registerAPI(router fiber.Router) {
	router.Get("/health", s.healthHandler.GetHealth)

	// static segments before :id
	router.Get("/product/all", s.productHandler.GetProducts)
	router.Post("/product", s.productHandler.CreateProduct)
	router.Get("/product/:id/stock", s.productHandler.CheckStock)
	router.Get("/product/:id", s.productHandler.GetProduct)
	router.Put("/product/:id", s.productHandler.UpdateProduct)
	router.Delete("/product/:id", s.productHandler.DeleteProduct)

	router.Get("/cart/all", s.cartHandler.GetItems)
	router.Post("/cart", s.cartHandler.AddItem)
	router.Patch("/cart", s.cartHandler.UpdateItemQuantity)
	router.Delete("/cart/:productId", s.cartHandler.RemoveItem)
}

func (s *Server) getOpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}

// registerSwaggerUI mounts the UI at /swagger when enabled and the spec file
// written by `storefront init` exists
func (s *Server) registerSwaggerUI(app *fiber.App) {
	cfg := s.cfg.Server.Swagger
	if !cfg.Enabled {
		return
	}
	if _, err := os.Stat(cfg.FilePath); err != nil {
		s.logger.Warn("Swagger UI disabled, spec file not found", zap.String("file", cfg.FilePath))
		return
	}

	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.FilePath,
		Path:     "swagger",
		Title:    "Storefront API",
	}))
}
