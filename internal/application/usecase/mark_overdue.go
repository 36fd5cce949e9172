package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
	"github.com/ouestbank/lending-service/internal/domain/service"
	"github.com/ouestbank/lending-service/pkg/money"
)

// MarkOverdueUseCase is the daily sweep that flips unsettled installments
// past their due date to LATE, assesses penalties and raises the affected
// loans to EN_RETARD. Installment statuses change only through this sweep
// and through repayments, never on read.
type MarkOverdueUseCase struct {
	loans        port.LoanRepository
	installments port.InstallmentRepository
	penalties    *service.PenaltyEngine
	publisher    port.EventPublisher
}

// NewMarkOverdueUseCase wires dependencies.
func NewMarkOverdueUseCase(
	loans port.LoanRepository,
	installments port.InstallmentRepository,
	penalties *service.PenaltyEngine,
	publisher port.EventPublisher,
) *MarkOverdueUseCase {
	return &MarkOverdueUseCase{
		loans:        loans,
		installments: installments,
		penalties:    penalties,
		publisher:    publisher,
	}
}

// Execute scans the portfolio as of the given day. Re-running the sweep for
// the same day re-assesses the same penalties rather than accumulating them.
func (uc *MarkOverdueUseCase) Execute(ctx context.Context, req dto.MarkOverdueRequest) (dto.MarkOverdueResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	overdue, err := uc.installments.FindOverdue(ctx, asOf)
	if err != nil {
		return dto.MarkOverdueResponse{}, fmt.Errorf("load overdue installments: %w", err)
	}

	byLoan := make(map[string][]model.Installment)
	for _, inst := range overdue {
		byLoan[inst.LoanID()] = append(byLoan[inst.LoanID()], inst)
	}

	resp := dto.MarkOverdueResponse{PenaltiesAssessed: decimal.Zero}
	for loanID, insts := range byLoan {
		assessed, marked, err := uc.sweepLoan(ctx, loanID, insts, asOf)
		if err != nil {
			return dto.MarkOverdueResponse{}, err
		}
		resp.InstallmentsMarked += marked
		resp.PenaltiesAssessed = resp.PenaltiesAssessed.Add(assessed)
		resp.LoansInArrears++
	}

	dueToday, err := uc.installments.FindDueOn(ctx, asOf)
	if err != nil {
		return dto.MarkOverdueResponse{}, fmt.Errorf("load due-today installments: %w", err)
	}
	for _, inst := range dueToday {
		updated, err := inst.MarkDueToday(asOf)
		if err != nil {
			return dto.MarkOverdueResponse{}, fmt.Errorf("mark installment %s due today: %w", inst.ID(), err)
		}
		if err := uc.installments.Save(ctx, updated); err != nil {
			return dto.MarkOverdueResponse{}, fmt.Errorf("save installment %s: %w", inst.ID(), err)
		}
		resp.InstallmentsDueToday++
	}

	return resp, nil
}

func (uc *MarkOverdueUseCase) sweepLoan(
	ctx context.Context,
	loanID string,
	overdue []model.Installment,
	asOf time.Time,
) (decimal.Decimal, int, error) {
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("load loan %s: %w", loanID, err)
	}

	currency, err := money.NewCurrency(loan.Currency())
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("loan %s: %w", loanID, err)
	}

	assessed := decimal.Zero
	marked := 0
	for _, inst := range overdue {
		daysLate := inst.DaysLateOn(asOf)
		penalty, err := uc.penalties.Assess(money.New(inst.Total(), currency), daysLate)
		if err != nil {
			return decimal.Zero, 0, fmt.Errorf("assess penalty on %s: %w", inst.ID(), err)
		}

		// The delta between the newly assessed penalty and what was already
		// on the installment keeps the loan's running total accurate when the
		// sweep runs daily.
		delta := penalty.Amount().Sub(inst.PenaltyApplied())

		updated, err := inst.MarkLate(daysLate, penalty.Amount(), asOf)
		if err != nil {
			return decimal.Zero, 0, fmt.Errorf("mark installment %s late: %w", inst.ID(), err)
		}
		if err := uc.installments.Save(ctx, updated); err != nil {
			return decimal.Zero, 0, fmt.Errorf("save installment %s: %w", inst.ID(), err)
		}
		marked++

		if delta.IsPositive() {
			loan, err = loan.AddPenalty(inst.ID(), delta, asOf)
			if err != nil {
				return decimal.Zero, 0, fmt.Errorf("add penalty to loan %s: %w", loanID, err)
			}
			assessed = assessed.Add(delta)
		}
	}

	loan, err = loan.MarkInArrears(asOf)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("mark loan %s in arrears: %w", loanID, err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return decimal.Zero, 0, fmt.Errorf("save loan %s: %w", loanID, err)
	}
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return decimal.Zero, 0, fmt.Errorf("publish events for loan %s: %w", loanID, err)
	}
	return assessed, marked, nil
}
