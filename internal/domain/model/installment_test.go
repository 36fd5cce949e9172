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

var dueDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func upcomingInstallment(t *testing.T) model.Installment {
	t.Helper()
	inst, err := model.NewInstallment("inst-001", "loan-001", model.ScheduleLine{
		Sequence:         1,
		DueDate:          dueDate,
		PrincipalPortion: d("9461.85"),
		InterestPortion:  d("1200.00"),
		Total:            d("10661.85"),
		RemainingBalance: d("110538.15"),
	}, dueDate.AddDate(0, -1, 0))
	require.NoError(t, err)
	return inst
}

func TestInstallment_RecordRepayment(t *testing.T) {
	t.Run("full payment on time settles as PAID", func(t *testing.T) {
		inst := upcomingInstallment(t)

		paid, err := inst.RecordRepayment(d("10661.85"), dueDate)
		require.NoError(t, err)

		assert.True(t, paid.Status().Equal(valueobject.InstallmentStatusPaid))
		require.NotNil(t, paid.PaymentDate())
		assert.Equal(t, dueDate, *paid.PaymentDate())
		assert.True(t, paid.AmountOutstanding().IsZero())

		require.Len(t, paid.DomainEvents(), 2)
		_, ok := paid.DomainEvents()[0].(event.RepaymentRecorded)
		require.True(t, ok)
		settled, ok := paid.DomainEvents()[1].(event.InstallmentPaid)
		require.True(t, ok)
		assert.Equal(t, "PAID", settled.FinalStatus)
	})

	t.Run("full payment after the due date settles as PAID_LATE", func(t *testing.T) {
		inst := upcomingInstallment(t)
		lateDay := dueDate.AddDate(0, 0, 3)

		paid, err := inst.RecordRepayment(d("10661.85"), lateDay)
		require.NoError(t, err)
		assert.True(t, paid.Status().Equal(valueobject.InstallmentStatusPaidLate))
	})

	t.Run("payment later the same day still counts as PAID", func(t *testing.T) {
		inst := upcomingInstallment(t)
		sameDayEvening := time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC)

		paid, err := inst.RecordRepayment(d("10661.85"), sameDayEvening)
		require.NoError(t, err)
		assert.True(t, paid.Status().Equal(valueobject.InstallmentStatusPaid))
	})

	t.Run("partial payments accumulate before settling", func(t *testing.T) {
		inst := upcomingInstallment(t)

		part, err := inst.RecordRepayment(d("5000"), dueDate.AddDate(0, 0, -5))
		require.NoError(t, err)
		assert.True(t, part.Status().Equal(valueobject.InstallmentStatusUpcoming))
		assert.True(t, d("5661.85").Equal(part.AmountOutstanding()))
		assert.Nil(t, part.PaymentDate())

		rest, err := part.RecordRepayment(d("5661.85"), dueDate.AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.True(t, rest.Status().Equal(valueobject.InstallmentStatusPaid))
		assert.True(t, d("10661.85").Equal(rest.PaidAmount()))
	})

	t.Run("settlement threshold includes the assessed penalty", func(t *testing.T) {
		inst := upcomingInstallment(t)
		late, err := inst.MarkLate(10, d("500"), dueDate.AddDate(0, 0, 10))
		require.NoError(t, err)

		// The scheduled total alone no longer settles.
		partial, err := late.RecordRepayment(d("10661.85"), dueDate.AddDate(0, 0, 12))
		require.NoError(t, err)
		assert.True(t, partial.Status().Equal(valueobject.InstallmentStatusLate))
		assert.True(t, d("500").Equal(partial.AmountOutstanding()))

		settled, err := partial.RecordRepayment(d("500"), dueDate.AddDate(0, 0, 13))
		require.NoError(t, err)
		assert.True(t, settled.Status().Equal(valueobject.InstallmentStatusPaidLate))
	})

	t.Run("rejects repayment on a settled installment", func(t *testing.T) {
		inst := upcomingInstallment(t)
		paid, err := inst.RecordRepayment(d("10661.85"), dueDate)
		require.NoError(t, err)

		_, err = paid.RecordRepayment(d("1"), dueDate)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inst := upcomingInstallment(t)
		_, err := inst.RecordRepayment(d("0"), dueDate)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
		_, err = inst.RecordRepayment(d("-10"), dueDate)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})
}

func TestInstallment_MarkLate(t *testing.T) {
	t.Run("records lateness and penalty", func(t *testing.T) {
		inst := upcomingInstallment(t)

		late, err := inst.MarkLate(7, d("248.78"), dueDate.AddDate(0, 0, 7))
		require.NoError(t, err)

		assert.True(t, late.Status().Equal(valueobject.InstallmentStatusLate))
		assert.Equal(t, 7, late.DaysLate())
		assert.True(t, d("248.78").Equal(late.PenaltyApplied()))
		assert.True(t, d("10910.63").Equal(late.AmountDue()))
	})

	t.Run("re-marking replaces the penalty instead of accumulating", func(t *testing.T) {
		inst := upcomingInstallment(t)
		late, err := inst.MarkLate(7, d("248.78"), dueDate.AddDate(0, 0, 7))
		require.NoError(t, err)

		later, err := late.MarkLate(14, d("497.56"), dueDate.AddDate(0, 0, 14))
		require.NoError(t, err)
		assert.Equal(t, 14, later.DaysLate())
		assert.True(t, d("497.56").Equal(later.PenaltyApplied()))
	})

	t.Run("cannot mark a settled installment late", func(t *testing.T) {
		inst := upcomingInstallment(t)
		paid, err := inst.RecordRepayment(d("10661.85"), dueDate)
		require.NoError(t, err)

		_, err = paid.MarkLate(3, d("100"), dueDate.AddDate(0, 0, 3))
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})
}

func TestInstallment_OverdueHelpers(t *testing.T) {
	inst := upcomingInstallment(t)

	assert.False(t, inst.IsOverdueOn(dueDate))
	assert.False(t, inst.IsOverdueOn(dueDate.AddDate(0, 0, -1)))
	assert.True(t, inst.IsOverdueOn(dueDate.AddDate(0, 0, 1)))

	assert.Equal(t, 0, inst.DaysLateOn(dueDate))
	assert.Equal(t, 0, inst.DaysLateOn(dueDate.AddDate(0, 0, -3)))
	assert.Equal(t, 9, inst.DaysLateOn(dueDate.AddDate(0, 0, 9)))

	paid, err := inst.RecordRepayment(d("10661.85"), dueDate)
	require.NoError(t, err)
	assert.False(t, paid.IsOverdueOn(dueDate.AddDate(0, 0, 30)))
}

func TestInstallment_MarkDueToday(t *testing.T) {
	inst := upcomingInstallment(t)

	due, err := inst.MarkDueToday(dueDate)
	require.NoError(t, err)
	assert.True(t, due.Status().Equal(valueobject.InstallmentStatusDueToday))

	_, err = due.MarkDueToday(dueDate)
	assert.ErrorIs(t, err, fault.ErrInvalidState)
}
