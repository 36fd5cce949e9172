package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NumberGenerator implements port.NumberGenerator on top of a database
// sequence so that numbers stay unique across service instances.
type NumberGenerator struct {
	pool *pgxpool.Pool
}

// NewNumberGenerator creates a sequence-backed loan number generator.
func NewNumberGenerator(pool *pgxpool.Pool) *NumberGenerator {
	return &NumberGenerator{pool: pool}
}

// NextLoanNumber returns the next loan number, formatted PRET-YYYY-NNNNNN.
func (g *NumberGenerator) NextLoanNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := g.pool.QueryRow(ctx, `SELECT nextval('loan_number_seq')`).Scan(&seq); err != nil {
		return "", infra("next loan number", err)
	}
	return fmt.Sprintf("PRET-%d-%06d", time.Now().UTC().Year(), seq), nil
}
