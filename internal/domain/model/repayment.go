package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/fault"
)

// Repayment is an immutable record of money received against an installment.
type Repayment struct {
	id            string
	installmentID string
	loanID        string
	amount        decimal.Decimal
	paidAt        time.Time
	recordedBy    string
	createdAt     time.Time
}

// NewRepayment records a repayment. recordedBy carries the acting
// administrator identity when known and may be empty.
func NewRepayment(id, installmentID, loanID string, amount decimal.Decimal, paidAt time.Time, recordedBy string, now time.Time) (Repayment, error) {
	if id == "" || installmentID == "" || loanID == "" {
		return Repayment{}, fmt.Errorf("%w: repayment, installment and loan IDs are required", fault.ErrInvalidParameter)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Repayment{}, fmt.Errorf("%w: repayment amount must be positive", fault.ErrInvalidParameter)
	}
	return Repayment{
		id:            id,
		installmentID: installmentID,
		loanID:        loanID,
		amount:        amount,
		paidAt:        paidAt,
		recordedBy:    recordedBy,
		createdAt:     now,
	}, nil
}

// ReconstructRepayment rebuilds a Repayment from persistence.
func ReconstructRepayment(id, installmentID, loanID string, amount decimal.Decimal, paidAt time.Time, recordedBy string, createdAt time.Time) Repayment {
	return Repayment{
		id:            id,
		installmentID: installmentID,
		loanID:        loanID,
		amount:        amount,
		paidAt:        paidAt,
		recordedBy:    recordedBy,
		createdAt:     createdAt,
	}
}

func (r Repayment) ID() string              { return r.id }
func (r Repayment) InstallmentID() string   { return r.installmentID }
func (r Repayment) LoanID() string          { return r.loanID }
func (r Repayment) Amount() decimal.Decimal { return r.amount }
func (r Repayment) PaidAt() time.Time       { return r.paidAt }
func (r Repayment) RecordedBy() string      { return r.recordedBy }
func (r Repayment) CreatedAt() time.Time    { return r.createdAt }
