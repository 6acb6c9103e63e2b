package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/port"
)

var (
	productColumns = []string{"id", "name", "description", "price_amount", "price_currency", "stock"}

	// price_amount is read as text so it round-trips through decimal exactly
	productSelect = []string{"id", "name", "description", "price_amount::text", "price_currency", "stock"}
)

type productRepository struct {
	db querier
}

// NewProductRepository returns a Postgres-backed product repository
func NewProductRepository(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{db: pool}
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	price := product.Price()

	sql, args, err := psql.Insert("products").
		Columns(productColumns...).
		Values(
			product.ID().Value(),
			product.Name().Value(),
			product.Description().Value(),
			squirrel.Expr("?::numeric", price.Amount().String()),
			price.Currency().String(),
			product.Stock().Quantity(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_amount = EXCLUDED.price_amount,
			price_currency = EXCLUDED.price_currency,
			stock = EXCLUDED.stock,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("psql.Insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	sql, args, err := psql.Select(productSelect...).
		From("products").
		Where(squirrel.Eq{"id": id.Value()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("psql.Select: %w", err)
	}

	product, err := scanProduct(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanProduct: %w", err)
	}
	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	sql, args, err := psql.Select(productSelect...).
		From("products").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("psql.Select: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *productRepository) Delete(ctx context.Context, id domain.ProductID) error {
	sql, args, err := psql.Delete("products").
		Where(squirrel.Eq{"id": id.Value()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("psql.Delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id, name, description, amountText, currencyCode string
		stock                                           int
	)
	if err := row.Scan(&id, &name, &description, &amountText, &currencyCode, &stock); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("price_amount[%s] is not valid: %w", amountText, err)
	}

	unit, err := currency.ParseISO(strings.TrimSpace(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	return domain.ReconstituteProduct(id, domain.ProductAttrs{
		Name:        name,
		Description: description,
		Price:       amount,
		Currency:    unit,
		Stock:       stock,
	})
}
