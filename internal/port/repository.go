package port

import (
	"context"

	"github.com/nkaewam/storefront/internal/domain"
)

// ProductRepository stores products keyed by product id. Save is an upsert
// in every implementation; FindByID returns nil, nil when the id is unknown.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id domain.ProductID) error
}

// CartRepository stores cart lines keyed by product id, with the same
// upsert and nil, nil conventions as ProductRepository.
type CartRepository interface {
	Save(ctx context.Context, item *domain.CartItem) error
	FindByProductID(ctx context.Context, productID domain.ProductID) (*domain.CartItem, error)
	FindAll(ctx context.Context) ([]*domain.CartItem, error)
	DeleteByProductID(ctx context.Context, productID domain.ProductID) error
}
