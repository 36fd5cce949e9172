package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientDirectory implements port.ClientDirectory against the local clients
// table, which is kept in sync with the customer master by the onboarding
// pipeline.
type ClientDirectory struct {
	pool *pgxpool.Pool
}

// NewClientDirectory creates a new PostgreSQL-backed client directory.
func NewClientDirectory(pool *pgxpool.Pool) *ClientDirectory {
	return &ClientDirectory{pool: pool}
}

// Exists reports whether a client with the given ID is known and active.
func (d *ClientDirectory) Exists(ctx context.Context, clientID string) (bool, error) {
	var exists bool
	err := d.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1 AND active)`, clientID,
	).Scan(&exists)
	if err != nil {
		return false, infra("check client", err)
	}
	return exists, nil
}
