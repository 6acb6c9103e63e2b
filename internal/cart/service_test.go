package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nkaewam/storefront/internal/cart"
	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/models"
)

// stubCatalog answers product lookups from a fixed stock table
type stubCatalog map[string]int

func (c stubCatalog) GetProduct(_ context.Context, id string) (*models.ProductResponse, error) {
	stock, ok := c[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &models.ProductResponse{ID: id, Name: "Widget", Price: 9.99, Stock: stock}, nil
}

// countingRepository records deletes issued against the cart store
type countingRepository struct {
	*cart.Repository
	deletes int
}

func (r *countingRepository) DeleteByProductID(ctx context.Context, productID domain.ProductID) error {
	r.deletes++
	return r.Repository.DeleteByProductID(ctx, productID)
}

func newService(catalog stubCatalog) (*cart.Service, *countingRepository) {
	repo := &countingRepository{Repository: cart.ProvideRepository()}
	return cart.ProvideService(repo, catalog, zap.NewNop()), repo
}

func addRequest(productID string, quantity int) *models.AddItemToCartRequest {
	return &models.AddItemToCartRequest{ProductID: &productID, Quantity: &quantity}
}

func updateRequest(productID string, quantity int) *models.UpdateItemQuantityRequest {
	return &models.UpdateItemQuantityRequest{ProductID: &productID, Quantity: &quantity}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		productID string
		quantity  int
		wantKind  domain.Kind
		wantError string
	}{
		{name: "in stock: ok", productID: "widget", quantity: 3},
		{name: "exactly the stock: ok", productID: "widget", quantity: 5},
		{name: "unknown product: error", productID: "ghost", quantity: 1, wantKind: domain.KindNotFound, wantError: "Product not found"},
		{name: "more than stock: error", productID: "widget", quantity: 6, wantKind: domain.KindConflict, wantError: "Not enough stock"},
		{name: "zero quantity: error", productID: "widget", quantity: 0, wantKind: domain.KindValidation, wantError: "Quantity must be at least 1"},
		{name: "above max with enough stock: error", productID: "bulk", quantity: 1000, wantKind: domain.KindValidation, wantError: "Quantity cannot exceed 999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(stubCatalog{"widget": 5, "bulk": 5000})

			item, err := svc.AddItem(ctx, addRequest(tt.productID, tt.quantity))
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				assert.EqualError(t, err, tt.wantError)

				items, err := svc.GetItems(ctx)
				require.NoError(t, err)
				assert.Empty(t, items)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &models.CartItemResponse{ProductID: tt.productID, Quantity: tt.quantity}, item)
		})
	}
}

func TestService_AddItem_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(stubCatalog{"widget": 10})

	_, err := svc.AddItem(ctx, addRequest("widget", 3))
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, addRequest("widget", 1))
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "Item already exists in cart, try updating quantity")

	items, err := svc.GetItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity, "the original line is untouched")
}

func TestService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("absent line: error", func(t *testing.T) {
		svc, _ := newService(stubCatalog{"widget": 10})
		_, err := svc.UpdateItemQuantity(ctx, updateRequest("widget", 2))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.EqualError(t, err, "Item not found in cart")
	})

	t.Run("replaces the quantity: ok", func(t *testing.T) {
		svc, _ := newService(stubCatalog{"widget": 10})
		_, err := svc.AddItem(ctx, addRequest("widget", 3))
		require.NoError(t, err)

		updated, err := svc.UpdateItemQuantity(ctx, updateRequest("widget", 2))
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Quantity, "quantity is replaced, not incremented")
	})

	t.Run("more than stock: error", func(t *testing.T) {
		svc, _ := newService(stubCatalog{"widget": 10})
		_, err := svc.AddItem(ctx, addRequest("widget", 3))
		require.NoError(t, err)

		_, err = svc.UpdateItemQuantity(ctx, updateRequest("widget", 11))
		require.Error(t, err)
		assert.EqualError(t, err, "Not enough stock")

		items, err := svc.GetItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, items[0].Quantity)
	})
}

func TestService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("present line: ok", func(t *testing.T) {
		svc, repo := newService(stubCatalog{"widget": 10})
		_, err := svc.AddItem(ctx, addRequest("widget", 1))
		require.NoError(t, err)

		require.NoError(t, svc.RemoveItem(ctx, "widget"))
		assert.Equal(t, 1, repo.deletes)

		items, err := svc.GetItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("absent line does not reach the repository: error", func(t *testing.T) {
		svc, repo := newService(stubCatalog{"widget": 10})

		err := svc.RemoveItem(ctx, "widget")
		require.Error(t, err)
		assert.EqualError(t, err, "Item not found in cart")
		assert.Zero(t, repo.deletes)
	})
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(stubCatalog{"widget": 5})

	_, err := svc.AddItem(ctx, addRequest("widget", 1))
	require.NoError(t, err)
	_, err = svc.UpdateItemQuantity(ctx, updateRequest("widget", 4))
	require.NoError(t, err)
	require.NoError(t, svc.RemoveItem(ctx, "widget"))

	// absent again, so add works a second time
	_, err = svc.AddItem(ctx, addRequest("widget", 2))
	require.NoError(t, err)
}
