package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/nkaewam/storefront/internal/domain"
)

// Repository keeps cart lines in memory, keyed by product id
type Repository struct {
	mu    sync.RWMutex
	items map[string]*domain.CartItem
	order []string
}

// ProvideRepository creates a new in-memory cart repository
func ProvideRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.CartItem),
	}
}

// Save inserts or replaces the line for the item's product
func (r *Repository) Save(_ context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.ProductID().Value()
	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = item
	return nil
}

// FindByProductID retrieves the line for a product, or nil
func (r *Repository) FindByProductID(_ context.Context, productID domain.ProductID) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[productID.Value()], nil
}

// FindAll retrieves every cart line in insertion order
func (r *Repository) FindAll(_ context.Context) ([]*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.CartItem, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.items[key])
	}
	return items, nil
}

// DeleteByProductID removes the line for a product; unknown ids are ignored
func (r *Repository) DeleteByProductID(_ context.Context, productID domain.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := productID.Value()
	if _, exists := r.items[key]; !exists {
		return nil
	}
	delete(r.items, key)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == key })
	return nil
}
