package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// ApproveLoanUseCase turns a pending demand into an active loan with a
// materialised installment schedule.
type ApproveLoanUseCase struct {
	loans     port.LoanRepository
	publisher port.EventPublisher
}

// NewApproveLoanUseCase wires dependencies.
func NewApproveLoanUseCase(loans port.LoanRepository, publisher port.EventPublisher) *ApproveLoanUseCase {
	return &ApproveLoanUseCase{loans: loans, publisher: publisher}
}

// Execute approves the demand, regenerates the schedule with the first
// installment due one month after approval, and persists the loan flip and
// every installment in one transaction.
func (uc *ApproveLoanUseCase) Execute(ctx context.Context, req dto.ApproveLoanRequest) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("load loan: %w", err)
	}

	approved, sched, err := loan.Approve(req.ApprovedBy, now)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	installments := make([]model.Installment, 0, len(sched.Lines))
	for _, line := range sched.Lines {
		inst, err := model.NewInstallment(uuid.New().String(), approved.ID(), line, now)
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("build installment %d: %w", line.Sequence, err)
		}
		installments = append(installments, inst)
	}

	if err := uc.loans.SaveApproved(ctx, approved, installments); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save approval: %w", err)
	}

	if err := uc.publisher.Publish(ctx, approved.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(approved, installments), nil
}
