package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkaewam/storefront/internal/domain"
	"github.com/nkaewam/storefront/internal/port"
)

type cartRepository struct {
	db querier
}

// NewCartRepository returns a Postgres-backed cart repository
func NewCartRepository(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{db: pool}
}

func (r *cartRepository) Save(ctx context.Context, item *domain.CartItem) error {
	sql, args, err := psql.Insert("cart_items").
		Columns("product_id", "quantity").
		Values(item.ProductID().Value(), item.Quantity().Value()).
		Suffix("ON CONFLICT (product_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("psql.Insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}

func (r *cartRepository) FindByProductID(ctx context.Context, productID domain.ProductID) (*domain.CartItem, error) {
	sql, args, err := psql.Select("product_id", "quantity").
		From("cart_items").
		Where(squirrel.Eq{"product_id": productID.Value()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("psql.Select: %w", err)
	}

	item, err := scanCartItem(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanCartItem: %w", err)
	}
	return item, nil
}

func (r *cartRepository) FindAll(ctx context.Context) ([]*domain.CartItem, error) {
	sql, args, err := psql.Select("product_id", "quantity").
		From("cart_items").
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

	items := []*domain.CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanCartItem: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func (r *cartRepository) DeleteByProductID(ctx context.Context, productID domain.ProductID) error {
	sql, args, err := psql.Delete("cart_items").
		Where(squirrel.Eq{"product_id": productID.Value()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("psql.Delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}
	return nil
}

func scanCartItem(row pgx.Row) (*domain.CartItem, error) {
	var (
		productID string
		quantity  int
	)
	if err := row.Scan(&productID, &quantity); err != nil {
		return nil, err
	}
	return domain.NewCartItem(productID, quantity)
}
