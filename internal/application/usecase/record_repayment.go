package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
	"github.com/ouestbank/lending-service/internal/domain/valueobject"
)

// RecordRepaymentUseCase applies money received to an installment and keeps
// the loan's lifecycle in step with its schedule.
type RecordRepaymentUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
	publisher    port.EventPublisher
}

// NewRecordRepaymentUseCase wires dependencies.
func NewRecordRepaymentUseCase(
	loans port.LoanRepository,
	installments port.InstallmentRepository,
	publisher port.EventPublisher,
) *RecordRepaymentUseCase {
	return &RecordRepaymentUseCase{loans: loans, installments: installments, publisher: publisher}
}

// Execute records the repayment and the installment update atomically. When
// the settling payment clears the last open installment the loan moves to
// TERMINE; when it clears the last late one the loan leaves EN_RETARD.
func (uc *RecordRepaymentUseCase) Execute(ctx context.Context, req dto.RecordRepaymentRequest) (dto.RecordRepaymentResponse, error) {
	now := time.Now().UTC()
	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}

	installment, err := uc.installments.FindByID(ctx, req.InstallmentID)
	if err != nil {
		return dto.RecordRepaymentResponse{}, fmt.Errorf("load installment: %w", err)
	}

	loan, err := uc.loans.FindByID(ctx, installment.LoanID())
	if err != nil {
		return dto.RecordRepaymentResponse{}, fmt.Errorf("load loan: %w", err)
	}
	if !loan.Status().IsActive() {
		return dto.RecordRepaymentResponse{}, fmt.Errorf(
			"%w: cannot record a repayment on a loan in status %s", fault.ErrInvalidState, loan.Status())
	}

	updated, err := installment.RecordRepayment(req.Amount, paidAt)
	if err != nil {
		return dto.RecordRepaymentResponse{}, err
	}

	repayment, err := model.NewRepayment(
		uuid.New().String(), installment.ID(), loan.ID(),
		req.Amount, paidAt, req.RecordedBy, now,
	)
	if err != nil {
		return dto.RecordRepaymentResponse{}, err
	}

	if err := uc.installments.SaveRepayment(ctx, updated, repayment); err != nil {
		return dto.RecordRepaymentResponse{}, fmt.Errorf("save repayment: %w", err)
	}

	pending := updated.DomainEvents()

	if updated.Status().IsSettled() {
		loan, err = uc.settleFollowUp(ctx, loan, now)
		if err != nil {
			return dto.RecordRepaymentResponse{}, err
		}
		pending = append(pending, loan.DomainEvents()...)
	}

	if err := uc.publisher.Publish(ctx, pending...); err != nil {
		return dto.RecordRepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RecordRepaymentResponse{
		Repayment:   toRepaymentResponse(repayment),
		Installment: toInstallmentResponse(updated),
		LoanStatus:  loan.Status().String(),
	}, nil
}

// settleFollowUp advances the loan lifecycle after an installment settles:
// completion when nothing remains open, arrears cleared when no late
// installment remains.
func (uc *RecordRepaymentUseCase) settleFollowUp(ctx context.Context, loan model.Loan, now time.Time) (model.Loan, error) {
	unpaid, err := uc.installments.FindUnpaidByLoanID(ctx, loan.ID())
	if err != nil {
		return loan, fmt.Errorf("load unpaid installments: %w", err)
	}

	var next model.Loan
	switch {
	case len(unpaid) == 0:
		next, err = loan.Complete(now)
	case loan.Status().Equal(valueobject.LoanStatusEnRetard) && !anyLate(unpaid):
		next, err = loan.ClearArrears(now)
	default:
		return loan, nil
	}
	if err != nil {
		return loan, err
	}

	if err := uc.loans.Save(ctx, next); err != nil {
		return loan, fmt.Errorf("save loan: %w", err)
	}
	return next, nil
}

func anyLate(installments []model.Installment) bool {
	for _, inst := range installments {
		if inst.Status().Equal(valueobject.InstallmentStatusLate) {
			return true
		}
	}
	return false
}
