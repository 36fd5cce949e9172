package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

func TestNewLoanStatus(t *testing.T) {
	for _, raw := range []string{"EN_ATTENTE", "APPROUVE", "REFUSE", "EN_COURS", "EN_RETARD", "TERMINE"} {
		s, err := valueobject.NewLoanStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.String())
		assert.False(t, s.IsZero())
	}

	_, err := valueobject.NewLoanStatus("ACTIVE")
	assert.Error(t, err)
	_, err = valueobject.NewLoanStatus("")
	assert.Error(t, err)
}

func TestLoanStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    valueobject.LoanStatus
		to      valueobject.LoanStatus
		allowed bool
	}{
		{valueobject.LoanStatusEnAttente, valueobject.LoanStatusApprouve, true},
		{valueobject.LoanStatusEnAttente, valueobject.LoanStatusRefuse, true},
		{valueobject.LoanStatusEnAttente, valueobject.LoanStatusEnCours, false},
		{valueobject.LoanStatusApprouve, valueobject.LoanStatusEnCours, true},
		{valueobject.LoanStatusEnCours, valueobject.LoanStatusEnRetard, true},
		{valueobject.LoanStatusEnRetard, valueobject.LoanStatusEnCours, true},
		{valueobject.LoanStatusEnCours, valueobject.LoanStatusTermine, true},
		{valueobject.LoanStatusEnRetard, valueobject.LoanStatusTermine, true},
		{valueobject.LoanStatusRefuse, valueobject.LoanStatusEnCours, false},
		{valueobject.LoanStatusTermine, valueobject.LoanStatusEnCours, false},
		{valueobject.LoanStatusEnCours, valueobject.LoanStatusEnAttente, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestLoanStatus_TransitionTo(t *testing.T) {
	next, err := valueobject.LoanStatusEnAttente.TransitionTo(valueobject.LoanStatusApprouve)
	assert.NoError(t, err)
	assert.True(t, next.Equal(valueobject.LoanStatusApprouve))

	_, err = valueobject.LoanStatusTermine.TransitionTo(valueobject.LoanStatusEnCours)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	assert.ErrorIs(t, err, fault.ErrInvalidState)
	assert.Contains(t, err.Error(), "TERMINE to EN_COURS")
}

func TestLoanStatus_Predicates(t *testing.T) {
	assert.True(t, valueobject.LoanStatusRefuse.IsTerminal())
	assert.True(t, valueobject.LoanStatusTermine.IsTerminal())
	assert.False(t, valueobject.LoanStatusEnCours.IsTerminal())

	assert.True(t, valueobject.LoanStatusEnCours.IsActive())
	assert.True(t, valueobject.LoanStatusEnRetard.IsActive())
	assert.False(t, valueobject.LoanStatusEnAttente.IsActive())
}

func TestNewInstallmentStatus(t *testing.T) {
	for _, raw := range []string{"UPCOMING", "DUE_TODAY", "LATE", "PAID", "PAID_LATE"} {
		s, err := valueobject.NewInstallmentStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.String())
	}

	_, err := valueobject.NewInstallmentStatus("OVERDUE")
	assert.Error(t, err)

	assert.True(t, valueobject.InstallmentStatusPaid.IsSettled())
	assert.True(t, valueobject.InstallmentStatusPaidLate.IsSettled())
	assert.False(t, valueobject.InstallmentStatusLate.IsSettled())
}
