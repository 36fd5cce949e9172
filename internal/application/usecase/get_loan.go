package usecase

import (
	"context"
	"fmt"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// GetLoanUseCase retrieves one loan by ID or by number.
type GetLoanUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository, installments port.InstallmentRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans, installments: installments}
}

// Execute loads the loan and its installments so the response carries the
// repayment progress.
func (uc *GetLoanUseCase) Execute(ctx context.Context, req dto.GetLoanRequest) (dto.LoanResponse, error) {
	var (
		loan model.Loan
		err  error
	)
	switch {
	case req.LoanID != "":
		loan, err = uc.loans.FindByID(ctx, req.LoanID)
	case req.LoanNumber != "":
		loan, err = uc.loans.FindByNumber(ctx, req.LoanNumber)
	default:
		return dto.LoanResponse{}, fmt.Errorf("%w: loan ID or number is required", fault.ErrInvalidParameter)
	}
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load loan: %w", err)
	}

	installments, err := uc.installments.FindByLoanID(ctx, loan.ID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load installments: %w", err)
	}

	return toLoanResponse(loan, installments), nil
}
