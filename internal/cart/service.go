package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/models"
	"github.com/nkaewam/storefront/internal/port"
)

// ProductLookup is the slice of the catalog the cart depends on
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*models.ProductResponse, error)
}

// Service handles cart business logic
type Service struct {
	repo     port.CartRepository
	products ProductLookup
	logger   *zap.Logger

	// mu makes the exists-check and the write of each mutation atomic
	mu sync.Mutex
}

// ProvideService creates a new cart service
func ProvideService(repo port.CartRepository, products ProductLookup, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		logger:   logger.Named("cart"),
	}
}

// AddItem puts a product in the cart. It fails if the product already has a
// line: changing the quantity of an existing line goes through UpdateItemQuantity.
func (s *Service) AddItem(ctx context.Context, req *models.AddItemToCartRequest) (*models.CartItemResponse, error) {
	productID, quantity := deref(req.ProductID), deref(req.Quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	id, err := domain.NewProductID(productID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByProductID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrItemAlreadyInCart
	}

	item, err := domain.NewCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info("Cart item added",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity))

	return toCartItemResponse(item), nil
}

// UpdateItemQuantity replaces the quantity of an existing cart line
func (s *Service) UpdateItemQuantity(ctx context.Context, req *models.UpdateItemQuantityRequest) (*models.CartItemResponse, error) {
	productID, quantity := deref(req.ProductID), deref(req.Quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.find(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.ensureStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	item, err := domain.NewCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	s.logger.Info("Cart item updated",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity))

	return toCartItemResponse(item), nil
}

// GetItems retrieves every cart line
func (s *Service) GetItems(ctx context.Context) ([]*models.CartItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	responses := make([]*models.CartItemResponse, len(items))
	for i, item := range items {
		responses[i] = toCartItemResponse(item)
	}
	return responses, nil
}

// RemoveItem deletes the cart line of a product
func (s *Service) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.find(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByProductID(ctx, item.ProductID()); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.logger.Info("Cart item removed", zap.String("product_id", productID))
	return nil
}

func (s *Service) find(ctx context.Context, productID string) (*domain.CartItem, error) {
	id, err := domain.NewProductID(productID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByProductID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrCartItemNotFound
	}
	return item, nil
}

// ensureStock fails when the product is unknown or cannot cover quantity
func (s *Service) ensureStock(ctx context.Context, productID string, quantity int) error {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock < quantity {
		return domain.ErrNotEnoughStock
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toCartItemResponse(item *domain.CartItem) *models.CartItemResponse {
	return &models.CartItemResponse{
		ProductID: item.ProductID().Value(),
		Quantity:  item.Quantity().Value(),
	}
}
