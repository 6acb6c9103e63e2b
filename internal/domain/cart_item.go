package domain

// CartItem is one cart line. The product id is its natural key.
type CartItem struct {
	productID ProductID
	quantity  Quantity
}

// NewCartItem validates both the product id and the quantity bounds.
func NewCartItem(productID string, quantity int) (*CartItem, error) {
	id, err := NewProductID(productID)
	if err != nil {
		return nil, err
	}
	q, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &CartItem{productID: id, quantity: q}, nil
}

func (i *CartItem) ProductID() ProductID { return i.productID }

func (i *CartItem) Quantity() Quantity { return i.quantity }
