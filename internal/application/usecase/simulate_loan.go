package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/internal/domain/port"
)

// maxDebtServiceShare caps the monthly payment at a third of the declared
// monthly income when the caller provides one.
var maxDebtServiceShare = decimal.NewFromInt(3)

// SimulateLoanUseCase computes a repayment preview without persisting anything.
type SimulateLoanUseCase struct {
	loanTypes port.LoanTypeRepository
}

// NewSimulateLoanUseCase wires dependencies.
func NewSimulateLoanUseCase(loanTypes port.LoanTypeRepository) *SimulateLoanUseCase {
	return &SimulateLoanUseCase{loanTypes: loanTypes}
}

// Execute checks eligibility against the loan type and returns the full
// schedule preview. Repeated calls with the same inputs return identical
// figures.
func (uc *SimulateLoanUseCase) Execute(ctx context.Context, req dto.SimulateLoanRequest) (dto.SimulationResponse, error) {
	loanType, err := uc.loanTypes.FindByID(ctx, req.LoanTypeID)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("load loan type: %w", err)
	}

	if err := loanType.CheckEligibility(req.Amount, req.TermMonths); err != nil {
		return dto.SimulationResponse{}, err
	}

	// A positive custom rate overrides the product rate, for negotiated
	// conditions previewed by an advisor.
	rate := loanType.AnnualRate()
	if req.CustomRate.IsPositive() {
		rate = req.CustomRate
	}

	firstDue := time.Now().UTC().AddDate(0, 1, 0)
	sched, err := model.ComputeSchedule(req.Amount, rate, req.TermMonths, firstDue)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("compute schedule: %w", err)
	}

	if req.MonthlyIncome.IsPositive() {
		maxPayment := req.MonthlyIncome.Div(maxDebtServiceShare)
		if sched.MonthlyPayment.GreaterThan(maxPayment) {
			return dto.SimulationResponse{}, fmt.Errorf(
				"%w: monthly payment %s exceeds a third of declared income %s",
				fault.ErrNotEligible, sched.MonthlyPayment, req.MonthlyIncome)
		}
	}

	fee := loanType.ProcessingFee(req.Amount)

	return dto.SimulationResponse{
		LoanTypeID:     loanType.ID(),
		Amount:         req.Amount,
		TermMonths:     req.TermMonths,
		AnnualRate:     rate,
		MonthlyPayment: sched.MonthlyPayment,
		TotalInterest:  sched.TotalInterest,
		TotalDue:       sched.TotalDue,
		ProcessingFee:  fee,
		CostOfCredit:   sched.TotalInterest.Add(fee),
		Schedule:       toScheduleLineResponses(sched.Lines),
	}, nil
}
