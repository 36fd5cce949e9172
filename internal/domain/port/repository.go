package port

import (
	"context"
	"time"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	// SaveApproved persists the approved loan and its freshly generated
	// installments in one transaction.
	SaveApproved(ctx context.Context, loan model.Loan, installments []model.Installment) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByNumber(ctx context.Context, number string) (model.Loan, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error)
	FindByStatus(ctx context.Context, status valueobject.LoanStatus) ([]model.Loan, error)
	FindAll(ctx context.Context) ([]model.Loan, error)
}

// InstallmentRepository persists and retrieves scheduled installments.
type InstallmentRepository interface {
	Save(ctx context.Context, inst model.Installment) error
	// SaveRepayment persists the updated installment and the repayment
	// record in one transaction.
	SaveRepayment(ctx context.Context, inst model.Installment, rep model.Repayment) error
	FindByID(ctx context.Context, id string) (model.Installment, error)
	FindByLoanID(ctx context.Context, loanID string) ([]model.Installment, error)
	FindUnpaidByLoanID(ctx context.Context, loanID string) ([]model.Installment, error)
	FindOverdue(ctx context.Context, asOf time.Time) ([]model.Installment, error)
	// FindDueOn returns the UPCOMING installments whose due date falls on
	// the given day.
	FindDueOn(ctx context.Context, day time.Time) ([]model.Installment, error)
}

// RepaymentRepository retrieves repayment records.
type RepaymentRepository interface {
	FindByInstallmentID(ctx context.Context, installmentID string) ([]model.Repayment, error)
	FindByLoanID(ctx context.Context, loanID string) ([]model.Repayment, error)
}

// LoanTypeRepository retrieves loan product reference data. Read-only.
type LoanTypeRepository interface {
	FindByID(ctx context.Context, id string) (model.LoanType, error)
	FindAll(ctx context.Context) ([]model.LoanType, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ClientDirectory answers whether a client exists in the bank's directory.
type ClientDirectory interface {
	Exists(ctx context.Context, clientID string) (bool, error)
}

// NumberGenerator produces unique human-readable loan numbers.
type NumberGenerator interface {
	NextLoanNumber(ctx context.Context) (string, error)
}
