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

const installmentColumns = `
	id, loan_id, sequence, due_date,
	principal_portion, interest_portion, total, remaining_balance,
	status, payment_date, paid_amount, penalty_applied, days_late,
	version, created_at, updated_at
`

const upsertInstallmentQuery = `
	INSERT INTO installments (
		id, loan_id, sequence, due_date,
		principal_portion, interest_portion, total, remaining_balance,
		status, payment_date, paid_amount, penalty_applied, days_late,
		version, created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	ON CONFLICT (id) DO UPDATE SET
		status          = EXCLUDED.status,
		payment_date    = EXCLUDED.payment_date,
		paid_amount     = EXCLUDED.paid_amount,
		penalty_applied = EXCLUDED.penalty_applied,
		days_late       = EXCLUDED.days_late,
		version         = installments.version + 1,
		updated_at      = EXCLUDED.updated_at
	WHERE installments.version = $14
`

const insertRepaymentQuery = `
	INSERT INTO repayments (id, installment_id, loan_id, amount, paid_at, recorded_by, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
`

var settledStatuses = []string{
	valueobject.InstallmentStatusPaid.String(),
	valueobject.InstallmentStatusPaidLate.String(),
}

// InstallmentRepo implements port.InstallmentRepository.
type InstallmentRepo struct {
	pool *pgxpool.Pool
}

// NewInstallmentRepo creates a new PostgreSQL-backed installment repository.
func NewInstallmentRepo(pool *pgxpool.Pool) *InstallmentRepo {
	return &InstallmentRepo{pool: pool}
}

// Save persists an installment (upsert by ID with optimistic locking).
func (r *InstallmentRepo) Save(ctx context.Context, inst model.Installment) error {
	return saveInstallment(ctx, r.pool, inst)
}

// SaveRepayment persists the updated installment and the repayment record in
// one transaction.
func (r *InstallmentRepo) SaveRepayment(ctx context.Context, inst model.Installment, rep model.Repayment) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := saveInstallment(ctx, tx, inst); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, insertRepaymentQuery,
			rep.ID(), rep.InstallmentID(), rep.LoanID(),
			rep.Amount(), rep.PaidAt(), rep.RecordedBy(), rep.CreatedAt(),
		)
		if err != nil {
			return infra("insert repayment", err)
		}
		return nil
	})
}

// FindByID retrieves an installment by ID.
func (r *InstallmentRepo) FindByID(ctx context.Context, id string) (model.Installment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+installmentColumns+` FROM installments WHERE id = $1`, id)
	inst, err := scanInstallmentRow(row)
	if err != nil {
		return model.Installment{}, notFound(err, "installment", id)
	}
	return inst, nil
}

// FindByLoanID retrieves the full schedule of a loan ordered by sequence.
func (r *InstallmentRepo) FindByLoanID(ctx context.Context, loanID string) ([]model.Installment, error) {
	return r.queryInstallments(ctx,
		`SELECT `+installmentColumns+` FROM installments WHERE loan_id = $1 ORDER BY sequence`, loanID)
}

// FindUnpaidByLoanID retrieves the unsettled installments of a loan ordered by sequence.
func (r *InstallmentRepo) FindUnpaidByLoanID(ctx context.Context, loanID string) ([]model.Installment, error) {
	return r.queryInstallments(ctx,
		`SELECT `+installmentColumns+` FROM installments
		 WHERE loan_id = $1 AND status <> ALL($2)
		 ORDER BY sequence`, loanID, settledStatuses)
}

// FindOverdue retrieves every unsettled installment across the portfolio whose
// due date is strictly before the given day.
func (r *InstallmentRepo) FindOverdue(ctx context.Context, asOf time.Time) ([]model.Installment, error) {
	return r.queryInstallments(ctx,
		`SELECT `+installmentColumns+` FROM installments
		 WHERE due_date < $1 AND status <> ALL($2)
		 ORDER BY loan_id, sequence`,
		asOf.Truncate(24*time.Hour), settledStatuses)
}

// FindDueOn retrieves the UPCOMING installments falling due on the given day.
func (r *InstallmentRepo) FindDueOn(ctx context.Context, day time.Time) ([]model.Installment, error) {
	start := day.Truncate(24 * time.Hour)
	return r.queryInstallments(ctx,
		`SELECT `+installmentColumns+` FROM installments
		 WHERE due_date >= $1 AND due_date < $2 AND status = $3
		 ORDER BY loan_id, sequence`,
		start, start.Add(24*time.Hour), valueobject.InstallmentStatusUpcoming.String())
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func saveInstallment(ctx context.Context, q pgshared.Querier, inst model.Installment) error {
	tag, err := q.Exec(ctx, upsertInstallmentQuery,
		inst.ID(), inst.LoanID(), inst.Sequence(), inst.DueDate(),
		inst.PrincipalPortion(), inst.InterestPortion(), inst.Total(), inst.RemainingBalance(),
		inst.Status().String(), inst.PaymentDate(), inst.PaidAmount(), inst.PenaltyApplied(), inst.DaysLate(),
		inst.Version(), inst.CreatedAt(), inst.UpdatedAt(),
	)
	if err != nil {
		return infra("save installment", err)
	}
	if tag.RowsAffected() == 0 {
		return conflict("installment", inst.ID())
	}
	return nil
}

func (r *InstallmentRepo) queryInstallments(ctx context.Context, query string, args ...any) ([]model.Installment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra("query installments", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		inst, err := scanInstallmentRow(rows)
		if err != nil {
			return nil, infra("scan installment", err)
		}
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, infra("iterate installments", err)
	}
	return installments, nil
}

func scanInstallmentRow(s scannable) (model.Installment, error) {
	var (
		id, loanID                         string
		sequence                           int
		dueDate                            time.Time
		principal, interest, total, remain decimal.Decimal
		statusStr                          string
		paymentDate                        *time.Time
		paidAmount, penaltyApplied         decimal.Decimal
		daysLate, version                  int
		createdAt, updatedAt               time.Time
	)

	err := s.Scan(
		&id, &loanID, &sequence, &dueDate,
		&principal, &interest, &total, &remain,
		&statusStr, &paymentDate, &paidAmount, &penaltyApplied, &daysLate,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Installment{}, err
	}

	status, err := valueobject.NewInstallmentStatus(statusStr)
	if err != nil {
		return model.Installment{}, err
	}

	return model.ReconstructInstallment(
		id, loanID, sequence, dueDate,
		principal, interest, total, remain,
		status, paymentDate, paidAmount, penaltyApplied,
		daysLate, version, createdAt, updatedAt,
	), nil
}
