package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// GetScheduleUseCase returns the full installment schedule of a loan.
type GetScheduleUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(loans port.LoanRepository, installments port.InstallmentRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{loans: loans, installments: installments}
}

// Execute returns every installment of the loan ordered by sequence.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, req dto.GetScheduleRequest) ([]dto.InstallmentResponse, error) {
	// Resolve the loan first so a missing loan surfaces as NotFound rather
	// than an empty schedule.
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return nil, fmt.Errorf("load loan: %w", err)
	}

	installments, err := uc.installments.FindByLoanID(ctx, loan.ID())
	if err != nil {
		return nil, fmt.Errorf("load installments: %w", err)
	}

	sort.Slice(installments, func(i, j int) bool {
		return installments[i].Sequence() < installments[j].Sequence()
	})
	return toInstallmentResponses(installments), nil
}
