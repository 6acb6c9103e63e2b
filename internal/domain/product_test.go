package domain_test

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nkaewam/storefront/internal/domain"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name      string
		attrs     domain.ProductAttrs
		wantError string
	}{
		{
			name:  "valid product: ok",
			attrs: validAttrs(),
		},
		{
			name: "zero price and stock: ok",
			attrs: domain.ProductAttrs{
				Name:  "Freebie",
				Price: decimal.Zero,
				Stock: 0,
			},
		},
		{
			name: "name of exactly 100 characters: ok",
			attrs: domain.ProductAttrs{
				Name:  strings.Repeat("a", domain.ProductNameMaxLength),
				Price: decimal.RequireFromString("1"),
			},
		},
		{
			name: "blank name: error",
			attrs: domain.ProductAttrs{
				Name:  "   ",
				Price: decimal.RequireFromString("1"),
			},
			wantError: "Product name cannot be empty",
		},
		{
			name: "name too long: error",
			attrs: domain.ProductAttrs{
				Name:  strings.Repeat("a", domain.ProductNameMaxLength+1),
				Price: decimal.RequireFromString("1"),
			},
			wantError: "Product name cannot exceed 100 characters",
		},
		{
			name: "description too long: error",
			attrs: domain.ProductAttrs{
				Name:        "Widget",
				Description: strings.Repeat("d", domain.ProductDescriptionMaxLength+1),
				Price:       decimal.RequireFromString("1"),
			},
			wantError: "Product description cannot exceed 2000 characters",
		},
		{
			name: "negative price: error",
			attrs: domain.ProductAttrs{
				Name:  "Widget",
				Price: decimal.RequireFromString("-0.01"),
			},
			wantError: "Money amount cannot be negative",
		},
		{
			name: "negative stock: error",
			attrs: domain.ProductAttrs{
				Name:  "Widget",
				Price: decimal.RequireFromString("1"),
				Stock: -1,
			},
			wantError: "Stock quantity cannot be negative",
		},
		{
			name: "first failing attribute wins: error",
			attrs: domain.ProductAttrs{
				Name:  "",
				Price: decimal.RequireFromString("-1"),
				Stock: -1,
			},
			wantError: "Product name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := domain.NewProduct(tt.attrs)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.EqualError(t, err, tt.wantError)
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, product.ID().Value())
			assert.Equal(t, strings.TrimSpace(tt.attrs.Name), product.Name().Value())
			assert.True(t, product.Price().Amount().Equal(tt.attrs.Price))
			assert.Equal(t, tt.attrs.Stock, product.Stock().Quantity())
		})
	}
}

func TestNewProduct_TrimsText(t *testing.T) {
	product, err := domain.NewProduct(domain.ProductAttrs{
		Name:        "  Widget  ",
		Description: "\tA useful widget\n",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Widget", product.Name().Value())
	assert.Equal(t, "A useful widget", product.Description().Value())
	assert.Equal(t, "USD 9.99", product.Price().String())
}

func TestNewProduct_GeneratesDistinctIDs(t *testing.T) {
	a, err := domain.NewProduct(validAttrs())
	require.NoError(t, err)
	b, err := domain.NewProduct(validAttrs())
	require.NoError(t, err)

	assert.False(t, a.ID().Equals(b.ID()))
}

func TestReconstituteProduct(t *testing.T) {
	t.Run("keeps the id: ok", func(t *testing.T) {
		product, err := domain.ReconstituteProduct("widget-1", validAttrs())
		require.NoError(t, err)
		assert.Equal(t, "widget-1", product.ID().Value())
	})

	t.Run("malformed id: error", func(t *testing.T) {
		_, err := domain.ReconstituteProduct("not valid!", validAttrs())
		require.Error(t, err)
		assert.EqualError(t, err, "ProductId cannot be empty")
	})

	t.Run("attrs round-trip: ok", func(t *testing.T) {
		attrs := validAttrs()
		attrs.Currency = currency.EUR

		product, err := domain.ReconstituteProduct("p-1", attrs)
		require.NoError(t, err)

		got := product.Attrs()
		assert.Equal(t, attrs.Name, got.Name)
		assert.Equal(t, attrs.Description, got.Description)
		assert.True(t, attrs.Price.Equal(got.Price))
		assert.Equal(t, currency.EUR, got.Currency)
		assert.Equal(t, attrs.Stock, got.Stock)
	})
}

func validAttrs() domain.ProductAttrs {
	return domain.ProductAttrs{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Stock:       gofakeit.IntRange(0, 500),
	}
}
