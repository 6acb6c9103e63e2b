package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkaewam/storefront/internal/domain"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{name: "validation", err: domain.NewValidationError("bad"), want: domain.KindValidation},
		{name: "not found", err: domain.ErrProductNotFound, want: domain.KindNotFound},
		{name: "conflict", err: domain.ErrNotEnoughStock, want: domain.KindConflict},
		{name: "wrapped conflict", err: fmt.Errorf("failed to add item: %w", domain.ErrItemAlreadyInCart), want: domain.KindConflict},
		{name: "plain error", err: errors.New("boom"), want: 0},
		{name: "nil", err: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	wrapped := fmt.Errorf("failed to get product: %w", domain.ErrProductNotFound)

	assert.True(t, domain.IsNotFound(wrapped))
	assert.False(t, domain.IsConflict(wrapped))
	assert.False(t, domain.IsValidation(wrapped))
	assert.Equal(t, "not_found", domain.KindNotFound.String())
	assert.Equal(t, "Product not found", wrapped.(interface{ Unwrap() error }).Unwrap().Error())
}
