package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/application/usecase"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
)

func TestRecordRepayment_Execute(t *testing.T) {
	setup := func(t *testing.T) (model.Loan, []model.Installment, *mockLoanRepository, *mockInstallmentRepository, *mockEventPublisher, *usecase.RecordRepaymentUseCase) {
		t.Helper()
		loan, installments := activeLoanFixture(t)
		loans := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) { return loan, nil },
		}
		instRepo := &mockInstallmentRepository{
			findByIDFunc: func(_ context.Context, id string) (model.Installment, error) {
				for _, inst := range installments {
					if inst.ID() == id {
						return inst, nil
					}
				}
				return model.Installment{}, fault.ErrNotFound
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewRecordRepaymentUseCase(loans, instRepo, publisher)
		return loan, installments, loans, instRepo, publisher, uc
	}

	t.Run("full payment on time settles as PAID", func(t *testing.T) {
		_, installments, _, instRepo, publisher, uc := setup(t)
		first := installments[0]
		// The other eleven remain open, so the loan stays EN_COURS.
		instRepo.findUnpaidFunc = func(_ context.Context, _ string) ([]model.Installment, error) {
			return installments[1:], nil
		}

		resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: first.ID(),
			Amount:        first.Total(),
			PaidAt:        first.DueDate(),
			RecordedBy:    "admin-007",
		})
		require.NoError(t, err)

		assert.Equal(t, "PAID", resp.Installment.Status)
		assert.Equal(t, "EN_COURS", resp.LoanStatus)
		assert.Equal(t, "admin-007", resp.Repayment.RecordedBy)

		require.Len(t, instRepo.savedRepayments, 1)
		require.Len(t, instRepo.savedInstallments, 1)
		// RepaymentRecorded + InstallmentPaid
		assert.Len(t, publisher.publishedEvents, 2)
	})

	t.Run("payment after the due date settles PAID_LATE", func(t *testing.T) {
		_, installments, _, instRepo, _, uc := setup(t)
		first := installments[0]
		instRepo.findUnpaidFunc = func(_ context.Context, _ string) ([]model.Installment, error) {
			return installments[1:], nil
		}

		resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: first.ID(),
			Amount:        first.Total(),
			PaidAt:        first.DueDate().AddDate(0, 0, 4),
		})
		require.NoError(t, err)
		assert.Equal(t, "PAID_LATE", resp.Installment.Status)
	})

	t.Run("partial payment leaves the installment open", func(t *testing.T) {
		_, installments, loans, instRepo, publisher, uc := setup(t)
		first := installments[0]

		resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: first.ID(),
			Amount:        d("5000"),
			PaidAt:        first.DueDate().AddDate(0, 0, -2),
		})
		require.NoError(t, err)

		assert.Equal(t, "UPCOMING", resp.Installment.Status)
		assert.True(t, d("5000").Equal(resp.Installment.PaidAmount))
		require.Len(t, instRepo.savedRepayments, 1)
		// No loan transition: only the repayment event is published.
		assert.Len(t, publisher.publishedEvents, 1)
		assert.Empty(t, loans.savedLoans)
	})

	t.Run("settling the last installment completes the loan", func(t *testing.T) {
		_, installments, loans, instRepo, publisher, uc := setup(t)
		last := installments[len(installments)-1]
		instRepo.findByIDFunc = func(_ context.Context, _ string) (model.Installment, error) {
			return last, nil
		}
		instRepo.findUnpaidFunc = func(_ context.Context, _ string) ([]model.Installment, error) {
			return nil, nil
		}

		resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: last.ID(),
			Amount:        last.Total(),
			PaidAt:        last.DueDate(),
		})
		require.NoError(t, err)

		assert.Equal(t, "TERMINE", resp.LoanStatus)
		require.Len(t, loans.savedLoans, 1)
		// RepaymentRecorded + InstallmentPaid + LoanCompleted
		assert.Len(t, publisher.publishedEvents, 3)
	})

	t.Run("clearing the last arrear returns the loan to EN_COURS", func(t *testing.T) {
		loan, installments, loans, instRepo, _, uc := setup(t)

		lateLoan, err := loan.MarkInArrears(approvalDate.AddDate(0, 2, 0))
		require.NoError(t, err)
		lateLoan = lateLoan.ClearEvents()
		loans.findByIDFunc = func(_ context.Context, _ string) (model.Loan, error) { return lateLoan, nil }

		lateInst, err := installments[0].MarkLate(10, d("500"), approvalDate.AddDate(0, 2, 0))
		require.NoError(t, err)
		instRepo.findByIDFunc = func(_ context.Context, _ string) (model.Installment, error) {
			return lateInst, nil
		}
		// Remaining open installments are all on schedule.
		instRepo.findUnpaidFunc = func(_ context.Context, _ string) ([]model.Installment, error) {
			return installments[1:], nil
		}

		resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: lateInst.ID(),
			Amount:        lateInst.AmountDue(),
			PaidAt:        lateInst.DueDate().AddDate(0, 0, 12),
		})
		require.NoError(t, err)

		assert.Equal(t, "PAID_LATE", resp.Installment.Status)
		assert.Equal(t, "EN_COURS", resp.LoanStatus)
		require.Len(t, loans.savedLoans, 1)
	})

	t.Run("rejects repayments on a pending loan", func(t *testing.T) {
		pending := pendingLoanFixture(t)
		_, installments, loans, instRepo, _, uc := setup(t)
		loans.findByIDFunc = func(_ context.Context, _ string) (model.Loan, error) { return pending, nil }

		_, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: installments[0].ID(),
			Amount:        d("1000"),
		})
		assert.ErrorIs(t, err, fault.ErrInvalidState)
		assert.Empty(t, instRepo.savedRepayments)
	})

	t.Run("rejects a second repayment on a settled installment", func(t *testing.T) {
		_, installments, _, instRepo, _, uc := setup(t)
		paid, err := installments[0].RecordRepayment(installments[0].Total(), installments[0].DueDate())
		require.NoError(t, err)
		paid = paid.ClearEvents()
		instRepo.findByIDFunc = func(_ context.Context, _ string) (model.Installment, error) {
			return paid, nil
		}

		_, err = uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: paid.ID(),
			Amount:        d("100"),
		})
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("missing installment yields NotFound", func(t *testing.T) {
		_, _, _, _, _, uc := setup(t)
		_, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
			InstallmentID: "ghost",
			Amount:        d("100"),
		})
		assert.ErrorIs(t, err, fault.ErrNotFound)
	})
}
