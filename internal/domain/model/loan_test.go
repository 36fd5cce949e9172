package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

func consumerLoanType() model.LoanType {
	return model.ReconstructLoanType(
		"type-001", "CONSO", "Prêt consommation",
		d("0.12"), d("50000"), d("5000000"), 6, 60, d("0.01"), true,
	)
}

func pendingLoan(t *testing.T) model.Loan {
	t.Helper()
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	loan, err := model.NewLoanDemand(
		"loan-001", "PRET-2025-0001", "client-001",
		consumerLoanType(), d("120000"), 12, "XOF", now,
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func TestNewLoanDemand(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)

	t.Run("registers a pending demand with frozen figures", func(t *testing.T) {
		loan, err := model.NewLoanDemand(
			"loan-001", "PRET-2025-0001", "client-001",
			consumerLoanType(), d("120000"), 12, "XOF", now,
		)
		require.NoError(t, err)

		assert.True(t, loan.Status().Equal(valueobject.LoanStatusEnAttente))
		assert.True(t, d("10661.85").Equal(loan.MonthlyPayment()))
		assert.True(t, d("127942.26").Equal(loan.TotalDue()))
		assert.True(t, d("1200.00").Equal(loan.ProcessingFee()))
		assert.Equal(t, "XOF", loan.Currency())
		assert.Nil(t, loan.ApprovalDate())
		assert.Nil(t, loan.FirstDueDate())
		assert.Equal(t, 1, loan.Version())

		require.Len(t, loan.DomainEvents(), 1)
		received, ok := loan.DomainEvents()[0].(event.LoanApplicationReceived)
		require.True(t, ok)
		assert.Equal(t, "PRET-2025-0001", received.LoanNumber)
	})

	t.Run("accepts amount and duration at the bounds", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			amount string
			months int
		}{
			{"minimum amount", "50000", 12},
			{"maximum amount", "5000000", 12},
			{"minimum duration", "120000", 6},
			{"maximum duration", "120000", 60},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewLoanDemand(
					"loan-x", "PRET-x", "client-001",
					consumerLoanType(), d(tc.amount), tc.months, "XOF", now,
				)
				assert.NoError(t, err)
			})
		}
	})

	t.Run("rejects amount and duration outside the bounds", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			amount string
			months int
		}{
			{"below minimum amount", "49999.99", 12},
			{"above maximum amount", "5000000.01", 12},
			{"below minimum duration", "120000", 5},
			{"above maximum duration", "120000", 61},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewLoanDemand(
					"loan-x", "PRET-x", "client-001",
					consumerLoanType(), d(tc.amount), tc.months, "XOF", now,
				)
				assert.ErrorIs(t, err, fault.ErrNotEligible)
			})
		}
	})

	t.Run("rejects an inactive loan type", func(t *testing.T) {
		inactive := model.ReconstructLoanType(
			"type-002", "AUTO", "Prêt auto",
			d("0.09"), d("500000"), d("20000000"), 12, 84, d("0.01"), false,
		)
		_, err := model.NewLoanDemand(
			"loan-x", "PRET-x", "client-001", inactive, d("1000000"), 24, "XOF", now,
		)
		assert.ErrorIs(t, err, fault.ErrNotEligible)
	})

	t.Run("requires identifiers", func(t *testing.T) {
		_, err := model.NewLoanDemand("", "PRET-x", "client-001", consumerLoanType(), d("120000"), 12, "XOF", now)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)

		_, err = model.NewLoanDemand("loan-x", "PRET-x", "", consumerLoanType(), d("120000"), 12, "XOF", now)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})
}

func TestLoan_Approve(t *testing.T) {
	approvedAt := time.Date(2025, 2, 15, 14, 0, 0, 0, time.UTC)

	t.Run("activates the loan and regenerates the schedule", func(t *testing.T) {
		loan := pendingLoan(t)

		approved, sched, err := loan.Approve("admin-007", approvedAt)
		require.NoError(t, err)

		assert.True(t, approved.Status().Equal(valueobject.LoanStatusEnCours))
		require.NotNil(t, approved.ApprovalDate())
		assert.Equal(t, approvedAt, *approved.ApprovalDate())

		require.NotNil(t, approved.FirstDueDate())
		assert.Equal(t, approvedAt.AddDate(0, 1, 0), *approved.FirstDueDate())
		require.NotNil(t, approved.LastDueDate())
		assert.Equal(t, approvedAt.AddDate(0, 12, 0), *approved.LastDueDate())

		require.Len(t, sched.Lines, 12)
		assert.True(t, sched.MonthlyPayment.Equal(approved.MonthlyPayment()))

		require.Len(t, approved.DomainEvents(), 1)
		ev, ok := approved.DomainEvents()[0].(event.LoanApproved)
		require.True(t, ok)
		assert.Equal(t, "admin-007", ev.ApprovedBy)
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		loan := pendingLoan(t)
		approved, _, err := loan.Approve("admin-007", approvedAt)
		require.NoError(t, err)

		_, _, err = approved.Approve("admin-007", approvedAt)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot approve a rejected loan", func(t *testing.T) {
		loan := pendingLoan(t)
		rejected, err := loan.Reject("insufficient income", "admin-007", approvedAt)
		require.NoError(t, err)

		_, _, err = rejected.Approve("admin-007", approvedAt)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("original copy is untouched", func(t *testing.T) {
		loan := pendingLoan(t)
		_, _, err := loan.Approve("admin-007", approvedAt)
		require.NoError(t, err)

		assert.True(t, loan.Status().Equal(valueobject.LoanStatusEnAttente))
		assert.Nil(t, loan.ApprovalDate())
	})
}

func TestLoan_Reject(t *testing.T) {
	now := time.Date(2025, 2, 15, 14, 0, 0, 0, time.UTC)

	t.Run("moves to terminal REFUSE with a reason", func(t *testing.T) {
		loan := pendingLoan(t)
		rejected, err := loan.Reject("insufficient income", "admin-007", now)
		require.NoError(t, err)

		assert.True(t, rejected.Status().Equal(valueobject.LoanStatusRefuse))
		assert.Equal(t, "insufficient income", rejected.RejectionReason())
		assert.True(t, rejected.Status().IsTerminal())

		_, err = rejected.Reject("again", "admin-007", now)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("requires a reason", func(t *testing.T) {
		loan := pendingLoan(t)
		_, err := loan.Reject("", "admin-007", now)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})
}

func TestLoan_ArrearsAndCompletion(t *testing.T) {
	now := time.Date(2025, 2, 15, 14, 0, 0, 0, time.UTC)

	activeLoan := func(t *testing.T) model.Loan {
		t.Helper()
		approved, _, err := pendingLoan(t).Approve("admin-007", now)
		require.NoError(t, err)
		return approved.ClearEvents()
	}

	t.Run("marks in arrears and clears back", func(t *testing.T) {
		loan := activeLoan(t)

		late, err := loan.MarkInArrears(now)
		require.NoError(t, err)
		assert.True(t, late.Status().Equal(valueobject.LoanStatusEnRetard))

		// Idempotent while already in arrears.
		again, err := late.MarkInArrears(now)
		require.NoError(t, err)
		assert.True(t, again.Status().Equal(valueobject.LoanStatusEnRetard))

		cleared, err := late.ClearArrears(now)
		require.NoError(t, err)
		assert.True(t, cleared.Status().Equal(valueobject.LoanStatusEnCours))
	})

	t.Run("cannot mark a pending loan in arrears", func(t *testing.T) {
		_, err := pendingLoan(t).MarkInArrears(now)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("accumulates penalties", func(t *testing.T) {
		loan := activeLoan(t)

		withPenalty, err := loan.AddPenalty("inst-001", d("500"), now)
		require.NoError(t, err)
		withPenalty, err = withPenalty.AddPenalty("inst-002", d("250.50"), now)
		require.NoError(t, err)

		assert.True(t, d("750.50").Equal(withPenalty.TotalPenalties()))
		assert.Len(t, withPenalty.DomainEvents(), 2)
	})

	t.Run("completes from either active state", func(t *testing.T) {
		loan := activeLoan(t)

		done, err := loan.Complete(now)
		require.NoError(t, err)
		assert.True(t, done.Status().Equal(valueobject.LoanStatusTermine))

		late, err := loan.MarkInArrears(now)
		require.NoError(t, err)
		doneLate, err := late.Complete(now)
		require.NoError(t, err)
		assert.True(t, doneLate.Status().Equal(valueobject.LoanStatusTermine))

		_, err = done.Complete(now)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})
}

func TestLoan_CostOfCredit(t *testing.T) {
	loan := pendingLoan(t)
	// interest 7942.26 + fee 1200.00, no penalties yet
	assert.True(t, d("9142.26").Equal(loan.CostOfCredit()), "got %s", loan.CostOfCredit())
}
