package valueobject

import (
	"fmt"

	"github.com/ouestbank/lending-service/internal/domain/fault"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan. The values keep the
// French labels used across the bank's back office.
type LoanStatus struct {
	value string
}

const (
	loanStatusEnAttente = "EN_ATTENTE"
	loanStatusApprouve  = "APPROUVE"
	loanStatusRefuse    = "REFUSE"
	loanStatusEnCours   = "EN_COURS"
	loanStatusEnRetard  = "EN_RETARD"
	loanStatusTermine   = "TERMINE"
)

var (
	LoanStatusEnAttente = LoanStatus{value: loanStatusEnAttente}
	LoanStatusApprouve  = LoanStatus{value: loanStatusApprouve}
	LoanStatusRefuse    = LoanStatus{value: loanStatusRefuse}
	LoanStatusEnCours   = LoanStatus{value: loanStatusEnCours}
	LoanStatusEnRetard  = LoanStatus{value: loanStatusEnRetard}
	LoanStatusTermine   = LoanStatus{value: loanStatusTermine}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusEnAttente: LoanStatusEnAttente,
	loanStatusApprouve:  LoanStatusApprouve,
	loanStatusRefuse:    LoanStatusRefuse,
	loanStatusEnCours:   LoanStatusEnCours,
	loanStatusEnRetard:  LoanStatusEnRetard,
	loanStatusTermine:   LoanStatusTermine,
}

// loanStatusTransitions enumerates the allowed moves of the loan lifecycle.
// APPROUVE is transient: approval immediately activates the loan.
var loanStatusTransitions = map[string][]string{
	loanStatusEnAttente: {loanStatusApprouve, loanStatusRefuse},
	loanStatusApprouve:  {loanStatusEnCours},
	loanStatusEnCours:   {loanStatusEnRetard, loanStatusTermine},
	loanStatusEnRetard:  {loanStatusEnCours, loanStatusTermine},
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanStatusTransitions[s.value] {
		if allowed == next.value {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the lifecycle allows the move, and
// ErrInvalidStatusTransition naming both statuses otherwise.
func (s LoanStatus) TransitionTo(next LoanStatus) (LoanStatus, error) {
	if !s.CanTransitionTo(next) {
		return LoanStatus{}, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s.value, next.value)
	}
	return next, nil
}

// IsTerminal returns true for states the loan can never leave.
func (s LoanStatus) IsTerminal() bool {
	return s.value == loanStatusRefuse || s.value == loanStatusTermine
}

// IsActive returns true while the loan has an outstanding schedule.
func (s LoanStatus) IsActive() bool {
	return s.value == loanStatusEnCours || s.value == loanStatusEnRetard
}

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the settlement state of a scheduled installment.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusUpcoming = "UPCOMING"
	installmentStatusDueToday = "DUE_TODAY"
	installmentStatusLate     = "LATE"
	installmentStatusPaid     = "PAID"
	installmentStatusPaidLate = "PAID_LATE"
)

var (
	InstallmentStatusUpcoming = InstallmentStatus{value: installmentStatusUpcoming}
	InstallmentStatusDueToday = InstallmentStatus{value: installmentStatusDueToday}
	InstallmentStatusLate     = InstallmentStatus{value: installmentStatusLate}
	InstallmentStatusPaid     = InstallmentStatus{value: installmentStatusPaid}
	InstallmentStatusPaidLate = InstallmentStatus{value: installmentStatusPaidLate}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusUpcoming: InstallmentStatusUpcoming,
	installmentStatusDueToday: InstallmentStatusDueToday,
	installmentStatusLate:     InstallmentStatusLate,
	installmentStatusPaid:     InstallmentStatusPaid,
	installmentStatusPaidLate: InstallmentStatusPaidLate,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// IsSettled returns true once the installment is fully paid.
func (s InstallmentStatus) IsSettled() bool {
	return s.value == installmentStatusPaid || s.value == installmentStatusPaidLate
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition marks a lifecycle move the transition
	// table forbids. It wraps fault.ErrInvalidState so callers keep
	// classifying with the shared taxonomy.
	ErrInvalidStatusTransition = fmt.Errorf("%w: invalid status transition", fault.ErrInvalidState)
)
