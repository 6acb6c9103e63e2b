package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ProductAttrs carries the raw business attributes of a product.
type ProductAttrs struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    currency.Unit
	Stock       int
}

// Product is the catalog aggregate root. It has no setters: a change is
// expressed by reconstituting a new Product with the same id.
type Product struct {
	id          ProductID
	name        ProductName
	description ProductDescription
	price       Money
	stock       Stock
}

// NewProduct builds a product with a freshly generated id.
func NewProduct(attrs ProductAttrs) (*Product, error) {
	return ReconstituteProduct("", attrs)
}

// ReconstituteProduct rebuilds a product with an existing id. Every
// attribute is validated again, including ones that did not change.
func ReconstituteProduct(id string, attrs ProductAttrs) (*Product, error) {
	productID, err := NewProductID(id)
	if err != nil {
		return nil, err
	}
	name, err := NewProductName(attrs.Name)
	if err != nil {
		return nil, err
	}
	description, err := NewProductDescription(attrs.Description)
	if err != nil {
		return nil, err
	}
	price, err := NewMoney(attrs.Price, attrs.Currency)
	if err != nil {
		return nil, err
	}
	stock, err := NewStock(attrs.Stock)
	if err != nil {
		return nil, err
	}

	return &Product{
		id:          productID,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
	}, nil
}

func (p *Product) ID() ProductID { return p.id }

func (p *Product) Name() ProductName { return p.name }

func (p *Product) Description() ProductDescription { return p.description }

func (p *Product) Price() Money { return p.price }

func (p *Product) Stock() Stock { return p.stock }

// Attrs returns the product's attributes in their raw form, ready to be
// merged with a partial update.
func (p *Product) Attrs() ProductAttrs {
	return ProductAttrs{
		Name:        p.name.Value(),
		Description: p.description.Value(),
		Price:       p.price.Amount(),
		Currency:    p.price.Currency(),
		Stock:       p.stock.Quantity(),
	}
}
