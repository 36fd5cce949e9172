package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/model"
)

const loanTypeColumns = `
	id, code, label, annual_rate, min_amount, max_amount,
	min_duration_months, max_duration_months, processing_fee_rate, active
`

// LoanTypeRepo implements port.LoanTypeRepository. The product catalog is
// maintained by migrations and back-office tooling, so it is read-only here.
type LoanTypeRepo struct {
	pool *pgxpool.Pool
}

// NewLoanTypeRepo creates a new PostgreSQL-backed loan type repository.
func NewLoanTypeRepo(pool *pgxpool.Pool) *LoanTypeRepo {
	return &LoanTypeRepo{pool: pool}
}

// FindByID retrieves a loan type by ID.
func (r *LoanTypeRepo) FindByID(ctx context.Context, id string) (model.LoanType, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanTypeColumns+` FROM loan_types WHERE id = $1`, id)
	lt, err := scanLoanTypeRow(row)
	if err != nil {
		return model.LoanType{}, notFound(err, "loan type", id)
	}
	return lt, nil
}

// FindAll retrieves the whole product catalog ordered by code.
func (r *LoanTypeRepo) FindAll(ctx context.Context) ([]model.LoanType, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+loanTypeColumns+` FROM loan_types ORDER BY code`)
	if err != nil {
		return nil, infra("query loan types", err)
	}
	defer rows.Close()

	var types []model.LoanType
	for rows.Next() {
		lt, err := scanLoanTypeRow(rows)
		if err != nil {
			return nil, infra("scan loan type", err)
		}
		types = append(types, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("iterate loan types", err)
	}
	return types, nil
}

func scanLoanTypeRow(s scannable) (model.LoanType, error) {
	var (
		id, code, label                  string
		annualRate, minAmount, maxAmount decimal.Decimal
		minDuration, maxDuration         int
		processingFeeRate                decimal.Decimal
		active                           bool
	)
	err := s.Scan(
		&id, &code, &label, &annualRate, &minAmount, &maxAmount,
		&minDuration, &maxDuration, &processingFeeRate, &active,
	)
	if err != nil {
		return model.LoanType{}, err
	}
	return model.ReconstructLoanType(
		id, code, label, annualRate, minAmount, maxAmount,
		minDuration, maxDuration, processingFeeRate, active,
	), nil
}
