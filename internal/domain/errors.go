package domain

import "errors"

// Kind classifies a domain failure so the transport layer can pick a status code.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a failure raised by a value object, entity or application service.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError reports input that violates a value object rule.
func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing product or cart item.
func NewNotFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflictError reports a business rule violation such as insufficient stock.
func NewConflictError(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

var (
	ErrProductNotFound      = NewNotFoundError("Product not found")
	ErrCartItemNotFound     = NewNotFoundError("Item not found in cart")
	ErrProductAlreadyExists = NewConflictError("Product with id already exists")
	ErrItemAlreadyInCart    = NewConflictError("Item already exists in cart, try updating quantity")
	ErrNotEnoughStock       = NewConflictError("Not enough stock")
)

// KindOf returns the kind of the first domain error in err's chain, or 0.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }
