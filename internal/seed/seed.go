package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/port"
)

// Fixture is the catalog a seed file describes
type Fixture struct {
	Products []ProductFixture `yaml:"products"`
}

// ProductFixture is one catalog entry. ID may be omitted, in which case one is
// generated. Price is kept as text so it parses into an exact decimal.
type ProductFixture struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
}

// Load reads a YAML fixture file
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &fx, nil
}

// Apply saves every fixture product into repo. Entries with an id overwrite the
// stored product. The first invalid entry stops the run and is reported with
// its index; products saved before it are kept.
func Apply(ctx context.Context, repo port.ProductRepository, fx *Fixture, unit currency.Unit) (int, error) {
	for i, entry := range fx.Products {
		product, err := entry.build(unit)
		if err != nil {
			return i, fmt.Errorf("products[%d]: %w", i, err)
		}
		if err := repo.Save(ctx, product); err != nil {
			return i, fmt.Errorf("products[%d]: failed to save product: %w", i, err)
		}
	}
	return len(fx.Products), nil
}

func (f ProductFixture) build(unit currency.Unit) (*domain.Product, error) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("Product price %q is not a number", f.Price))
	}

	attrs := domain.ProductAttrs{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Currency:    unit,
		Stock:       f.Stock,
	}
	if f.ID == "" {
		return domain.NewProduct(attrs)
	}
	return domain.ReconstituteProduct(f.ID, attrs)
}
