package usecase

import (
	"context"
	"fmt"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// ListRepaymentsUseCase lists the repayment history of an installment or a loan.
type ListRepaymentsUseCase struct {
	repayments port.RepaymentRepository
}

// NewListRepaymentsUseCase wires dependencies.
func NewListRepaymentsUseCase(repayments port.RepaymentRepository) *ListRepaymentsUseCase {
	return &ListRepaymentsUseCase{repayments: repayments}
}

// Execute returns the repayments in the order they were recorded.
func (uc *ListRepaymentsUseCase) Execute(ctx context.Context, req dto.ListRepaymentsRequest) ([]dto.RepaymentResponse, error) {
	var (
		repayments []model.Repayment
		err        error
	)
	switch {
	case req.InstallmentID != "":
		repayments, err = uc.repayments.FindByInstallmentID(ctx, req.InstallmentID)
	case req.LoanID != "":
		repayments, err = uc.repayments.FindByLoanID(ctx, req.LoanID)
	default:
		return nil, fmt.Errorf("%w: installment ID or loan ID is required", fault.ErrInvalidParameter)
	}
	if err != nil {
		return nil, fmt.Errorf("list repayments: %w", err)
	}

	out := make([]dto.RepaymentResponse, 0, len(repayments))
	for _, rep := range repayments {
		out = append(out, toRepaymentResponse(rep))
	}
	return out, nil
}
