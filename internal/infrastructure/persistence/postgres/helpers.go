package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ouestbank/lending-service/internal/domain/fault"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

// notFound maps pgx.ErrNoRows onto the domain taxonomy.
func notFound(err error, entity, key string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", fault.ErrNotFound, entity, key)
	}
	return fmt.Errorf("%w: load %s %s: %v", fault.ErrInfrastructure, entity, key, err)
}

// notFoundPlain builds a not-found error when no driver error is available,
// e.g. a DELETE that touched zero rows.
func notFoundPlain(entity, key string) error {
	return fmt.Errorf("%w: %s %s", fault.ErrNotFound, entity, key)
}

// conflict builds the error for a lost optimistic-locking race.
func conflict(entity, id string) error {
	return fmt.Errorf("%w: %s %s was modified concurrently", fault.ErrConcurrencyConflict, entity, id)
}

// infra wraps a driver error so callers cannot mistake it for a business failure.
func infra(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", fault.ErrInfrastructure, op, err)
}
