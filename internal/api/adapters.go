package api

import (
	"context"

	"github.com/nkaewam/storefront/internal/cart"
	"github.com/nkaewam/storefront/internal/models"
	"github.com/nkaewam/storefront/internal/product"
)

// ProductServiceAdapter adapts product.Service to the cart.ProductLookup interface
type ProductServiceAdapter struct {
	service *product.Service
}

// ProvideProductLookup creates a new adapter
func ProvideProductLookup(service *product.Service) cart.ProductLookup {
	return &ProductServiceAdapter{service: service}
}

func (a *ProductServiceAdapter) GetProduct(ctx context.Context, id string) (*models.ProductResponse, error) {
	return a.service.GetProduct(ctx, id)
}
