package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
	pgshared "github.com/ouestbank/lending-service/pkg/postgres"
)

const loanColumns = `
	id, number, client_id, loan_type_id,
	requested_amount, granted_amount, term_months,
	annual_rate, monthly_payment, total_due, total_penalties, processing_fee,
	currency, status, rejection_reason,
	application_date, approval_date, first_due_date, last_due_date,
	version, created_at, updated_at
`

const upsertLoanQuery = `
	INSERT INTO loans (
		id, number, client_id, loan_type_id,
		requested_amount, granted_amount, term_months,
		annual_rate, monthly_payment, total_due, total_penalties, processing_fee,
		currency, status, rejection_reason,
		application_date, approval_date, first_due_date, last_due_date,
		version, created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	ON CONFLICT (id) DO UPDATE SET
		monthly_payment  = EXCLUDED.monthly_payment,
		total_due        = EXCLUDED.total_due,
		total_penalties  = EXCLUDED.total_penalties,
		status           = EXCLUDED.status,
		rejection_reason = EXCLUDED.rejection_reason,
		approval_date    = EXCLUDED.approval_date,
		first_due_date   = EXCLUDED.first_due_date,
		last_due_date    = EXCLUDED.last_due_date,
		version          = loans.version + 1,
		updated_at       = EXCLUDED.updated_at
	WHERE loans.version = $20
`

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan (upsert by ID with optimistic locking).
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return saveLoan(ctx, r.pool, loan)
}

// SaveApproved persists the approved loan and its installments in one
// transaction. Either everything lands or nothing does.
func (r *LoanRepo) SaveApproved(ctx context.Context, loan model.Loan, installments []model.Installment) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := saveLoan(ctx, tx, loan); err != nil {
			return err
		}
		for _, inst := range installments {
			if err := saveInstallment(ctx, tx, inst); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a loan. Installments cascade at the schema level.
func (r *LoanRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return infra("delete loan", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundPlain("loan", id)
	}
	return nil
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
	loan, err := scanLoanRow(row)
	if err != nil {
		return model.Loan{}, notFound(err, "loan", id)
	}
	return loan, nil
}

// FindByNumber retrieves a loan by its human-readable number.
func (r *LoanRepo) FindByNumber(ctx context.Context, number string) (model.Loan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE number = $1`, number)
	loan, err := scanLoanRow(row)
	if err != nil {
		return model.Loan{}, notFound(err, "loan number", number)
	}
	return loan, nil
}

// FindByClientID retrieves all loans of a client, newest first.
func (r *LoanRepo) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	return r.queryLoans(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
}

// FindByStatus retrieves all loans in the given lifecycle state.
func (r *LoanRepo) FindByStatus(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error) {
	return r.queryLoans(ctx,
		`SELECT `+loanColumns+` FROM loans WHERE status = $1 ORDER BY created_at DESC`, status.String())
}

// FindAll retrieves the whole portfolio, newest first.
func (r *LoanRepo) FindAll(ctx context.Context) ([]model.Loan, error) {
	return r.queryLoans(ctx, `SELECT `+loanColumns+` FROM loans ORDER BY created_at DESC`)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func saveLoan(ctx context.Context, q pgshared.Querier, loan model.Loan) error {
	tag, err := q.Exec(ctx, upsertLoanQuery,
		loan.ID(), loan.Number(), loan.ClientID(), loan.LoanTypeID(),
		loan.RequestedAmount(), loan.GrantedAmount(), loan.TermMonths(),
		loan.AnnualRate(), loan.MonthlyPayment(), loan.TotalDue(), loan.TotalPenalties(), loan.ProcessingFee(),
		loan.Currency(), loan.Status().String(), loan.RejectionReason(),
		loan.ApplicationDate(), loan.ApprovalDate(), loan.FirstDueDate(), loan.LastDueDate(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return infra("save loan", err)
	}
	if tag.RowsAffected() == 0 {
		return conflict("loan", loan.ID())
	}
	return nil
}

func (r *LoanRepo) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra("query loans", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, infra("scan loan", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("iterate loans", err)
	}
	return loans, nil
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, number, clientID, loanTypeID string
		requestedAmount, grantedAmount   decimal.Decimal
		termMonths                       int
		annualRate, monthlyPayment       decimal.Decimal
		totalDue, totalPenalties         decimal.Decimal
		processingFee                    decimal.Decimal
		currency, statusStr              string
		rejectionReason                  *string
		applicationDate                  time.Time
		approvalDate, firstDue, lastDue  *time.Time
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &number, &clientID, &loanTypeID,
		&requestedAmount, &grantedAmount, &termMonths,
		&annualRate, &monthlyPayment, &totalDue, &totalPenalties, &processingFee,
		&currency, &statusStr, &rejectionReason,
		&applicationDate, &approvalDate, &firstDue, &lastDue,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, err
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, err
	}

	reason := ""
	if rejectionReason != nil {
		reason = *rejectionReason
	}

	return model.ReconstructLoan(
		id, number, clientID, loanTypeID,
		requestedAmount, grantedAmount, termMonths,
		annualRate, monthlyPayment, totalDue, totalPenalties, processingFee,
		currency, status, reason,
		applicationDate, approvalDate, firstDue, lastDue,
		version, createdAt, updatedAt,
	), nil
}
