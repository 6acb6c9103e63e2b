package domain

import (
	"fmt"
	"strconv"
)

const (
	MinQuantity = 1
	MaxQuantity = 999
)

// Quantity is the number of units of one product in the cart.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value < MinQuantity {
		return Quantity{}, NewValidationError(fmt.Sprintf("Quantity must be at least %d", MinQuantity))
	}
	if value > MaxQuantity {
		return Quantity{}, NewValidationError(fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity))
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int { return q.value }

// Add returns a new Quantity shifted by delta; the bounds are checked again.
func (q Quantity) Add(delta int) (Quantity, error) {
	return NewQuantity(q.value + delta)
}

func (q Quantity) Equals(other Quantity) bool { return q.value == other.value }

func (q Quantity) String() string { return strconv.Itoa(q.value) }
