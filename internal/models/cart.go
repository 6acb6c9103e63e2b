package models

// AddItemToCartRequest represents the request payload for adding a cart line
type AddItemToCartRequest struct {
	ProductID *string `json:"productId" label:"Product ID" validate:"required,min=1"`
	Quantity  *int    `json:"quantity" label:"Quantity" validate:"required,min=1"`
}

// UpdateItemQuantityRequest represents the request payload for changing a cart line
type UpdateItemQuantityRequest struct {
	ProductID *string `json:"productId" label:"Product ID" validate:"required,min=1"`
	Quantity  *int    `json:"quantity" label:"Quantity" validate:"required,min=1"`
}

// CartItemResponse represents a cart line in responses
type CartItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartItemParams holds the path parameters of cart routes
type CartItemParams struct {
	ProductID string `params:"productId" label:"Product ID" validate:"required,min=1"`
}
