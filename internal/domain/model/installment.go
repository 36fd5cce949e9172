package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Installment aggregate
// ---------------------------------------------------------------------------

// Installment is one scheduled repayment of a loan. Immutable; mutations
// return a new copy.
type Installment struct {
	id               string
	loanID           string
	sequence         int
	dueDate          time.Time
	principalPortion decimal.Decimal
	interestPortion  decimal.Decimal
	total            decimal.Decimal
	remainingBalance decimal.Decimal
	status           valueobject.InstallmentStatus
	paymentDate      *time.Time
	paidAmount       decimal.Decimal
	penaltyApplied   decimal.Decimal
	daysLate         int
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// NewInstallment materialises one line of an approved loan's schedule.
func NewInstallment(id, loanID string, line ScheduleLine, now time.Time) (Installment, error) {
	if id == "" || loanID == "" {
		return Installment{}, fmt.Errorf("%w: installment and loan IDs are required", fault.ErrInvalidParameter)
	}
	if line.Sequence <= 0 {
		return Installment{}, fmt.Errorf("%w: sequence must be positive", fault.ErrInvalidParameter)
	}

	return Installment{
		id:               id,
		loanID:           loanID,
		sequence:         line.Sequence,
		dueDate:          line.DueDate,
		principalPortion: line.PrincipalPortion,
		interestPortion:  line.InterestPortion,
		total:            line.Total,
		remainingBalance: line.RemainingBalance,
		status:           valueobject.InstallmentStatusUpcoming,
		paidAmount:       decimal.Zero,
		penaltyApplied:   decimal.Zero,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructInstallment rebuilds an Installment from persistence.
func ReconstructInstallment(
	id, loanID string,
	sequence int,
	dueDate time.Time,
	principalPortion, interestPortion, total, remainingBalance decimal.Decimal,
	status valueobject.InstallmentStatus,
	paymentDate *time.Time,
	paidAmount, penaltyApplied decimal.Decimal,
	daysLate, version int,
	createdAt, updatedAt time.Time,
) Installment {
	return Installment{
		id:               id,
		loanID:           loanID,
		sequence:         sequence,
		dueDate:          dueDate,
		principalPortion: principalPortion,
		interestPortion:  interestPortion,
		total:            total,
		remainingBalance: remainingBalance,
		status:           status,
		paymentDate:      paymentDate,
		paidAmount:       paidAmount,
		penaltyApplied:   penaltyApplied,
		daysLate:         daysLate,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// MarkDueToday flips UPCOMING to DUE_TODAY on the due date itself.
func (i Installment) MarkDueToday(now time.Time) (Installment, error) {
	if !i.status.Equal(valueobject.InstallmentStatusUpcoming) {
		return i, fmt.Errorf("%w: installment %d is %s", fault.ErrInvalidState, i.sequence, i.status)
	}
	next := i
	next.status = valueobject.InstallmentStatusDueToday
	next.updatedAt = now
	next.domainEvents = copyEvents(i.domainEvents)
	return next, nil
}

// MarkLate flips an unsettled installment past its due date to LATE, recording
// how many days it has been overdue and any penalty assessed for the lateness.
// Penalty assessment is idempotent per day count: re-marking with the same
// daysLate replaces rather than accumulates.
func (i Installment) MarkLate(daysLate int, penalty decimal.Decimal, now time.Time) (Installment, error) {
	if i.status.IsSettled() {
		return i, fmt.Errorf("%w: installment %d is already settled", fault.ErrInvalidState, i.sequence)
	}
	if daysLate <= 0 {
		return i, fmt.Errorf("%w: days late must be positive", fault.ErrInvalidParameter)
	}
	if penalty.IsNegative() {
		return i, fmt.Errorf("%w: penalty must not be negative", fault.ErrInvalidParameter)
	}
	next := i
	next.status = valueobject.InstallmentStatusLate
	next.daysLate = daysLate
	next.penaltyApplied = penalty
	next.updatedAt = now
	next.domainEvents = copyEvents(i.domainEvents)
	return next, nil
}

// RecordRepayment accumulates a partial or full repayment. The installment
// settles only once the cumulative paid amount covers the total due plus any
// assessed penalty; it then flips to PAID when the settling payment arrives on
// or before the due date, PAID_LATE otherwise.
func (i Installment) RecordRepayment(amount decimal.Decimal, paidAt time.Time) (Installment, error) {
	if i.status.IsSettled() {
		return i, fmt.Errorf("%w: installment %d is already settled", fault.ErrInvalidState, i.sequence)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return i, fmt.Errorf("%w: repayment amount must be positive", fault.ErrInvalidParameter)
	}

	next := i
	next.paidAmount = i.paidAmount.Add(amount)
	next.updatedAt = paidAt
	next.domainEvents = copyEvents(i.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRepaymentRecorded(
		i.loanID, i.id, i.sequence, amount, paidAt,
	))

	if next.paidAmount.GreaterThanOrEqual(next.AmountDue()) {
		if truncateToDay(paidAt).After(truncateToDay(i.dueDate)) {
			next.status = valueobject.InstallmentStatusPaidLate
		} else {
			next.status = valueobject.InstallmentStatusPaid
		}
		next.paymentDate = &paidAt
		next.domainEvents = append(next.domainEvents, event.NewInstallmentPaid(
			i.loanID, i.id, i.sequence, next.status.String(), paidAt,
		))
	}

	return next, nil
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

// AmountDue returns what the installment requires to settle: the scheduled
// total plus any assessed penalty.
func (i Installment) AmountDue() decimal.Decimal {
	return i.total.Add(i.penaltyApplied)
}

// AmountOutstanding returns the amount still owed on the installment.
func (i Installment) AmountOutstanding() decimal.Decimal {
	out := i.AmountDue().Sub(i.paidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// IsOverdueOn reports whether the installment is unsettled and strictly past
// its due date on the given day.
func (i Installment) IsOverdueOn(today time.Time) bool {
	return !i.status.IsSettled() && truncateToDay(today).After(truncateToDay(i.dueDate))
}

// DaysLateOn returns the whole days elapsed since the due date, zero when the
// due date has not passed.
func (i Installment) DaysLateOn(today time.Time) int {
	d := int(truncateToDay(today).Sub(truncateToDay(i.dueDate)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (i Installment) ID() string                            { return i.id }
func (i Installment) LoanID() string                        { return i.loanID }
func (i Installment) Sequence() int                         { return i.sequence }
func (i Installment) DueDate() time.Time                    { return i.dueDate }
func (i Installment) PrincipalPortion() decimal.Decimal     { return i.principalPortion }
func (i Installment) InterestPortion() decimal.Decimal      { return i.interestPortion }
func (i Installment) Total() decimal.Decimal                { return i.total }
func (i Installment) RemainingBalance() decimal.Decimal     { return i.remainingBalance }
func (i Installment) Status() valueobject.InstallmentStatus { return i.status }
func (i Installment) PaymentDate() *time.Time               { return i.paymentDate }
func (i Installment) PaidAmount() decimal.Decimal           { return i.paidAmount }
func (i Installment) PenaltyApplied() decimal.Decimal       { return i.penaltyApplied }
func (i Installment) DaysLate() int                         { return i.daysLate }
func (i Installment) Version() int                          { return i.version }
func (i Installment) CreatedAt() time.Time                  { return i.createdAt }
func (i Installment) UpdatedAt() time.Time                  { return i.updatedAt }
func (i Installment) DomainEvents() []event.DomainEvent     { return i.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (i Installment) ClearEvents() Installment {
	next := i
	next.domainEvents = nil
	return next
}
