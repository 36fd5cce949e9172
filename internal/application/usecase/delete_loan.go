package usecase

import (
	"context"
	"fmt"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// DeleteLoanUseCase removes a loan that is not currently being repaid.
type DeleteLoanUseCase struct {
	loans port.LoanRepository
}

// NewDeleteLoanUseCase wires dependencies.
func NewDeleteLoanUseCase(loans port.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{loans: loans}
}

// Execute deletes a loan in EN_ATTENTE, REFUSE or TERMINE. An EN_COURS or
// EN_RETARD loan has an outstanding schedule and cannot be deleted.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, req dto.DeleteLoanRequest) error {
	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return fmt.Errorf("load loan: %w", err)
	}

	if status := loan.Status(); status.IsActive() {
		return fmt.Errorf("%w: cannot delete a loan in status %s", fault.ErrInvalidState, status)
	}

	if err := uc.loans.Delete(ctx, loan.ID()); err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	return nil
}
