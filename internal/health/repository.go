package health

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository probes the storage backend
type Repository struct {
	pool *pgxpool.Pool
}

// ProvideRepository creates a new health repository. pool is nil when the
// in-memory store is in use.
func ProvideRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Storage names the backend being probed
func (r *Repository) Storage() string {
	if r.pool == nil {
		return "memory"
	}
	return "postgres"
}

// CheckSystemHealth reports whether storage is reachable
func (r *Repository) CheckSystemHealth(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}
	return r.pool.Ping(ctx)
}
