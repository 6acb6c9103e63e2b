package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	ProductNameMaxLength        = 100
	ProductDescriptionMaxLength = 2000
)

// ProductName is a trimmed, non-empty name of at most ProductNameMaxLength characters.
type ProductName struct {
	value string
}

func NewProductName(name string) (ProductName, error) {
	v := strings.TrimSpace(name)
	if v == "" {
		return ProductName{}, NewValidationError("Product name cannot be empty")
	}
	if utf8.RuneCountInString(v) > ProductNameMaxLength {
		return ProductName{}, NewValidationError(
			fmt.Sprintf("Product name cannot exceed %d characters", ProductNameMaxLength))
	}
	return ProductName{value: v}, nil
}

func (n ProductName) Value() string { return n.value }

func (n ProductName) String() string { return n.value }

func (n ProductName) Equals(other ProductName) bool { return n.value == other.value }

// ProductDescription is trimmed free text; the zero value is the empty description.
type ProductDescription struct {
	value string
}

func NewProductDescription(description string) (ProductDescription, error) {
	v := strings.TrimSpace(description)
	if utf8.RuneCountInString(v) > ProductDescriptionMaxLength {
		return ProductDescription{}, NewValidationError(
			fmt.Sprintf("Product description cannot exceed %d characters", ProductDescriptionMaxLength))
	}
	return ProductDescription{value: v}, nil
}

func (d ProductDescription) Value() string { return d.value }

func (d ProductDescription) String() string { return d.value }

func (d ProductDescription) Equals(other ProductDescription) bool { return d.value == other.value }

// Stock is the number of units on hand.
type Stock struct {
	quantity int
}

func NewStock(quantity int) (Stock, error) {
	if quantity < 0 {
		return Stock{}, NewValidationError("Stock quantity cannot be negative")
	}
	return Stock{quantity: quantity}, nil
}

func (s Stock) Quantity() int { return s.quantity }

// Covers reports whether there are at least n units on hand.
func (s Stock) Covers(n int) bool { return s.quantity >= n }

func (s Stock) Equals(other Stock) bool { return s.quantity == other.quantity }
