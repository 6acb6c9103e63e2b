package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

const msgEmptyIdentifier = "ProductId cannot be empty"

// parseIdentifier returns id unchanged when it is well formed, or a fresh
// UUID when id is empty.
func parseIdentifier(id string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}
	if strings.TrimSpace(id) == "" || !identifierPattern.MatchString(id) {
		return "", NewValidationError(msgEmptyIdentifier)
	}
	return id, nil
}

// ProductID identifies a product and doubles as the cart line key.
type ProductID struct {
	value string
}

// NewProductID validates id, generating one when id is empty.
func NewProductID(id string) (ProductID, error) {
	v, err := parseIdentifier(id)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{value: v}, nil
}

func (id ProductID) Value() string { return id.value }

func (id ProductID) String() string { return id.value }

func (id ProductID) Equals(other ProductID) bool { return id.value == other.value }

// ItemID identifies a cart line. Storage keys cart lines by ProductID instead.
type ItemID struct {
	value string
}

// NewItemID validates id, generating one when id is empty.
func NewItemID(id string) (ItemID, error) {
	v, err := parseIdentifier(id)
	if err != nil {
		return ItemID{}, err
	}
	return ItemID{value: v}, nil
}

func (id ItemID) Value() string { return id.value }

func (id ItemID) String() string { return id.value }

func (id ItemID) Equals(other ItemID) bool { return id.value == other.value }
