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

func TestCreateApplication_Execute(t *testing.T) {
	newUC := func(loans *mockLoanRepository, clients *mockClientDirectory, publisher *mockEventPublisher) *usecase.CreateApplicationUseCase {
		loanTypes := &mockLoanTypeRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanType, error) {
				return consumerLoanType(), nil
			},
		}
		return usecase.NewCreateApplicationUseCase(loans, loanTypes, clients, &mockNumberGenerator{}, publisher)
	}

	t.Run("registers a pending demand", func(t *testing.T) {
		loans := &mockLoanRepository{}
		publisher := &mockEventPublisher{}
		uc := newUC(loans, &mockClientDirectory{}, publisher)

		resp, err := uc.Execute(context.Background(), dto.CreateApplicationRequest{
			ClientID:   "client-001",
			LoanTypeID: "type-001",
			Amount:     d("120000"),
			TermMonths: 12,
		})
		require.NoError(t, err)

		assert.Equal(t, "EN_ATTENTE", resp.Status)
		assert.Equal(t, "PRET-2025-0001", resp.Number)
		assert.Equal(t, "XOF", resp.Currency)
		assert.True(t, d("10661.85").Equal(resp.MonthlyPayment))
		assert.True(t, resp.ProgressPercent.IsZero())

		require.Len(t, loans.savedLoans, 1)
		require.Len(t, publisher.publishedEvents, 1)
	})

	t.Run("unknown client yields NotFound", func(t *testing.T) {
		clients := &mockClientDirectory{
			existsFunc: func(_ context.Context, _ string) (bool, error) { return false, nil },
		}
		uc := newUC(&mockLoanRepository{}, clients, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CreateApplicationRequest{
			ClientID: "ghost", LoanTypeID: "type-001", Amount: d("120000"), TermMonths: 12,
		})
		assert.ErrorIs(t, err, fault.ErrNotFound)
	})

	t.Run("ineligible demand is not persisted", func(t *testing.T) {
		loans := &mockLoanRepository{}
		uc := newUC(loans, &mockClientDirectory{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CreateApplicationRequest{
			ClientID: "client-001", LoanTypeID: "type-001", Amount: d("10"), TermMonths: 12,
		})
		assert.ErrorIs(t, err, fault.ErrNotEligible)
		assert.Empty(t, loans.savedLoans)
	})
}
