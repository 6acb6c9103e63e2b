package models

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Price is a JSON number decoded into an exact decimal. Quoted values are
// rejected.
type Price struct {
	decimal.Decimal
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(Price{})}
	}
	return p.Decimal.UnmarshalJSON(data)
}

// CreateProductRequest represents the request payload for creating a product
type CreateProductRequest struct {
	Name        *string `json:"name" label:"Product name" validate:"required,min=1"`
	Description *string `json:"description,omitempty" label:"Product description"`
	Price       *Price  `json:"price" label:"Product price" validate:"required" swaggertype:"number"`
	Stock       *int    `json:"stock" label:"Product stock" validate:"required"`
}

// UpdateProductRequest represents the request payload for updating a product.
// Omitted fields keep their current value.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" label:"Product name" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" label:"Product description"`
	Price       *Price  `json:"price,omitempty" label:"Product price" swaggertype:"number"`
	Stock       *int    `json:"stock,omitempty" label:"Product stock"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Stock == nil
}

// ProductResponse represents the response payload for product operations
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// StockResponse reports whether a product can cover a requested quantity
type StockResponse struct {
	Available bool `json:"available"`
	Requested int  `json:"requested"`
}

// ProductIDParams holds the path parameters of product routes
type ProductIDParams struct {
	ID string `params:"id" label:"Product ID" validate:"required,min=1"`
}
