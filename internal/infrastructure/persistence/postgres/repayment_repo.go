package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/model"
)

const repaymentColumns = `id, installment_id, loan_id, amount, paid_at, recorded_by, created_at`

// RepaymentRepo implements port.RepaymentRepository. Repayments are
// append-only; writes go through InstallmentRepo.SaveRepayment.
type RepaymentRepo struct {
	pool *pgxpool.Pool
}

// NewRepaymentRepo creates a new PostgreSQL-backed repayment repository.
func NewRepaymentRepo(pool *pgxpool.Pool) *RepaymentRepo {
	return &RepaymentRepo{pool: pool}
}

// FindByInstallmentID retrieves the payments applied to one installment,
// oldest first.
func (r *RepaymentRepo) FindByInstallmentID(ctx context.Context, installmentID string) ([]model.Repayment, error) {
	return r.queryRepayments(ctx,
		`SELECT `+repaymentColumns+` FROM repayments WHERE installment_id = $1 ORDER BY paid_at`, installmentID)
}

// FindByLoanID retrieves the full payment history of a loan, oldest first.
func (r *RepaymentRepo) FindByLoanID(ctx context.Context, loanID string) ([]model.Repayment, error) {
	return r.queryRepayments(ctx,
		`SELECT `+repaymentColumns+` FROM repayments WHERE loan_id = $1 ORDER BY paid_at`, loanID)
}

func (r *RepaymentRepo) queryRepayments(ctx context.Context, query string, args ...any) ([]model.Repayment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra("query repayments", err)
	}
	defer rows.Close()

	var repayments []model.Repayment
	for rows.Next() {
		var (
			id, installmentID, loanID string
			amount                    decimal.Decimal
			paidAt                    time.Time
			recordedBy                string
			createdAt                 time.Time
		)
		if err := rows.Scan(&id, &installmentID, &loanID, &amount, &paidAt, &recordedBy, &createdAt); err != nil {
			return nil, infra("scan repayment", err)
		}
		repayments = append(repayments, model.ReconstructRepayment(id, installmentID, loanID, amount, paidAt, recordedBy, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra("iterate repayments", err)
	}
	return repayments, nil
}
