package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// RejectLoanUseCase refuses a pending demand.
type RejectLoanUseCase struct {
	loans     port.LoanRepository
	publisher port.EventPublisher
}

// NewRejectLoanUseCase wires dependencies.
func NewRejectLoanUseCase(loans port.LoanRepository, publisher port.EventPublisher) *RejectLoanUseCase {
	return &RejectLoanUseCase{loans: loans, publisher: publisher}
}

// Execute moves the demand to the terminal REFUSE state with the given reason.
func (uc *RejectLoanUseCase) Execute(ctx context.Context, req dto.RejectLoanRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load loan: %w", err)
	}

	rejected, err := loan.Reject(req.Reason, req.RejectedBy, now)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	if err := uc.loans.Save(ctx, rejected); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, rejected.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(rejected, nil), nil
}
