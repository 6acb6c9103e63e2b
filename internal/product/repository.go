package product

import (
	"context"
	"slices"
	"sync"

	"github.com/nkaewam/storefront/internal/domain"
)

// Repository keeps products in memory, in insertion order
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

// ProvideRepository creates a new in-memory product repository
func ProvideRepository() *Repository {
	return &Repository{
		products: make(map[string]*domain.Product),
	}
}

// Save inserts or replaces a product. A replaced product keeps its position.
func (r *Repository) Save(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := product.ID().Value()
	if _, exists := r.products[id]; !exists {
		r.order = append(r.order, id)
	}
	r.products[id] = product
	return nil
}

// FindByID retrieves a product, or nil when it is not stored
func (r *Repository) FindByID(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.products[id.Value()], nil
}

// FindAll retrieves all products
func (r *Repository) FindAll(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// Delete removes a product; unknown ids are ignored
func (r *Repository) Delete(_ context.Context, id domain.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.Value()
	if _, exists := r.products[key]; !exists {
		return nil
	}
	delete(r.products, key)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == key })
	return nil
}
