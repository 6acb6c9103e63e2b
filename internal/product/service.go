package product

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/models"
	"github.com/nkaewam/storefront/internal/port"
)

// Service handles product business logic
type Service struct {
	repo     port.ProductRepository
	currency currency.Unit
	logger   *zap.Logger

	// mu serializes read-then-write sequences against repo
	mu sync.Mutex
}

// ProvideService creates a new product service
func ProvideService(repo port.ProductRepository, cfg *config.Config, logger *zap.Logger) (*Service, error) {
	unit, err := cfg.Catalog.Unit()
	if err != nil {
		return nil, err
	}
	return &Service{
		repo:     repo,
		currency: unit,
		logger:   logger.Named("product"),
	}, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	attrs := domain.ProductAttrs{Currency: s.currency}
	if req.Name != nil {
		attrs.Name = *req.Name
	}
	if req.Description != nil {
		attrs.Description = *req.Description
	}
	if req.Price != nil {
		attrs.Price = req.Price.Decimal
	}
	if req.Stock != nil {
		attrs.Stock = *req.Stock
	}

	product, err := domain.NewProduct(attrs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.FindByID(ctx, product.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrProductAlreadyExists
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created",
		zap.String("id", product.ID().Value()),
		zap.String("name", product.Name().Value()),
		zap.Stringer("price", product.Price()))

	return toProductResponse(product), nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, id string) (*models.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProducts retrieves all products
func (s *Service) GetProducts(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	responses := make([]*models.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = toProductResponse(product)
	}
	return responses, nil
}

// UpdateProduct merges the supplied fields into the stored product and
// validates the result as a whole
func (s *Service) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := existing.Attrs()
	if req.Name != nil {
		attrs.Name = *req.Name
	}
	if req.Description != nil {
		attrs.Description = *req.Description
	}
	if req.Price != nil {
		attrs.Price = req.Price.Decimal
	}
	if req.Stock != nil {
		attrs.Stock = *req.Stock
	}

	updated, err := domain.ReconstituteProduct(existing.ID().Value(), attrs)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info("Product updated", zap.String("id", updated.ID().Value()))
	return toProductResponse(updated), nil
}

// DeleteProduct deletes a product
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, product.ID()); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Product deleted", zap.String("id", product.ID().Value()))
	return nil
}

// CheckStock checks if enough stock is available
func (s *Service) CheckStock(ctx context.Context, id string, quantity int) (bool, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return false, err
	}
	return product.Stock().Covers(quantity), nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Product, error) {
	productID, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// toProductResponse converts a Product entity to ProductResponse
func toProductResponse(product *domain.Product) *models.ProductResponse {
	return &models.ProductResponse{
		ID:          product.ID().Value(),
		Name:        product.Name().Value(),
		Description: product.Description().Value(),
		Price:       product.Price().Float64(),
		Stock:       product.Stock().Quantity(),
	}
}
