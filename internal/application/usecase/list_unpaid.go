package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// ListUnpaidUseCase returns the unsettled installments of a loan.
type ListUnpaidUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
}

// NewListUnpaidUseCase wires dependencies.
func NewListUnpaidUseCase(loans port.LoanRepository, installments port.InstallmentRepository) *ListUnpaidUseCase {
	return &ListUnpaidUseCase{loans: loans, installments: installments}
}

// Execute returns the loan's installments that are not yet PAID or PAID_LATE,
// ordered by sequence.
func (uc *ListUnpaidUseCase) Execute(ctx context.Context, req dto.ListUnpaidRequest) ([]dto.InstallmentResponse, error) {
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return nil, fmt.Errorf("load loan: %w", err)
	}

	installments, err := uc.installments.FindUnpaidByLoanID(ctx, loan.ID())
	if err != nil {
		return nil, fmt.Errorf("load unpaid installments: %w", err)
	}

	sort.Slice(installments, func(i, j int) bool {
		return installments[i].Sequence() < installments[j].Sequence()
	})
	return toInstallmentResponses(installments), nil
}
