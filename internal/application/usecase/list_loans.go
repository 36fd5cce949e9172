package usecase

import (
	"context"
	"fmt"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// ListLoansUseCase lists the portfolio, optionally filtered by client or status.
type ListLoansUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loans port.LoanRepository, installments port.InstallmentRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loans: loans, installments: installments}
}

// Execute returns the matching loans with repayment progress.
func (uc *ListLoansUseCase) Execute(ctx context.Context, req dto.ListLoansRequest) ([]dto.LoanResponse, error) {
	var (
		loans []model.Loan
		err   error
	)
	switch {
	case req.ClientID != "":
		loans, err = uc.loans.FindByClientID(ctx, req.ClientID)
	case req.Status != "":
		status, serr := valueobject.NewLoanStatus(req.Status)
		if serr != nil {
			return nil, fmt.Errorf("%w: %v", fault.ErrInvalidParameter, serr)
		}
		loans, err = uc.loans.FindByStatus(ctx, status)
	default:
		loans, err = uc.loans.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		installments, err := uc.installments.FindByLoanID(ctx, loan.ID())
		if err != nil {
			return nil, fmt.Errorf("load installments for %s: %w", loan.ID(), err)
		}
		out = append(out, toLoanResponse(loan, installments))
	}
	return out, nil
}
