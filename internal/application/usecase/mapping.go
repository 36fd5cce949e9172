package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/application/dto"
	"github.com/ouestbank/lending-service/internal/domain/model"
	"github.com/ouestbank/lending-service/pkg/money"
)

var oneHundred = decimal.NewFromInt(100)

func toLoanResponse(loan model.Loan, installments []model.Installment) dto.LoanResponse {
	return dto.LoanResponse{
		ID:              loan.ID(),
		Number:          loan.Number(),
		ClientID:        loan.ClientID(),
		LoanTypeID:      loan.LoanTypeID(),
		RequestedAmount: loan.RequestedAmount(),
		GrantedAmount:   loan.GrantedAmount(),
		TermMonths:      loan.TermMonths(),
		AnnualRate:      loan.AnnualRate(),
		MonthlyPayment:  loan.MonthlyPayment(),
		TotalDue:        loan.TotalDue(),
		TotalPenalties:  loan.TotalPenalties(),
		ProcessingFee:   loan.ProcessingFee(),
		CostOfCredit:    loan.CostOfCredit(),
		Currency:        loan.Currency(),
		Status:          loan.Status().String(),
		RejectionReason: loan.RejectionReason(),
		ProgressPercent: progressPercent(installments),
		ApplicationDate: loan.ApplicationDate(),
		ApprovalDate:    loan.ApprovalDate(),
		FirstDueDate:    loan.FirstDueDate(),
		LastDueDate:     loan.LastDueDate(),
		CreatedAt:       loan.CreatedAt(),
		UpdatedAt:       loan.UpdatedAt(),
	}
}

// progressPercent is the count of settled installments over the schedule
// length, as a percentage rounded to two decimal places. A partially paid
// installment does not move the figure until it settles.
func progressPercent(installments []model.Installment) decimal.Decimal {
	if len(installments) == 0 {
		return decimal.Zero
	}
	settled := 0
	for _, inst := range installments {
		if inst.Status().IsSettled() {
			settled++
		}
	}
	return money.RoundAmount(decimal.NewFromInt(int64(settled)).
		Mul(oneHundred).
		DivRound(decimal.NewFromInt(int64(len(installments))), money.RateScale))
}

func toInstallmentResponse(inst model.Installment) dto.InstallmentResponse {
	return dto.InstallmentResponse{
		ID:                inst.ID(),
		LoanID:            inst.LoanID(),
		Sequence:          inst.Sequence(),
		DueDate:           inst.DueDate(),
		Principal:         inst.PrincipalPortion(),
		Interest:          inst.InterestPortion(),
		Total:             inst.Total(),
		RemainingBalance:  inst.RemainingBalance(),
		Status:            inst.Status().String(),
		PaymentDate:       inst.PaymentDate(),
		PaidAmount:        inst.PaidAmount(),
		PenaltyApplied:    inst.PenaltyApplied(),
		AmountOutstanding: inst.AmountOutstanding(),
		DaysLate:          inst.DaysLate(),
	}
}

func toInstallmentResponses(installments []model.Installment) []dto.InstallmentResponse {
	out := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		out = append(out, toInstallmentResponse(inst))
	}
	return out
}

func toRepaymentResponse(rep model.Repayment) dto.RepaymentResponse {
	return dto.RepaymentResponse{
		ID:            rep.ID(),
		InstallmentID: rep.InstallmentID(),
		LoanID:        rep.LoanID(),
		Amount:        rep.Amount(),
		PaidAt:        rep.PaidAt(),
		RecordedBy:    rep.RecordedBy(),
	}
}

func toScheduleLineResponses(lines []model.ScheduleLine) []dto.ScheduleLineResponse {
	out := make([]dto.ScheduleLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, dto.ScheduleLineResponse{
			Sequence:         line.Sequence,
			DueDate:          line.DueDate,
			Principal:        line.PrincipalPortion,
			Interest:         line.InterestPortion,
			Total:            line.Total,
			RemainingBalance: line.RemainingBalance,
		})
	}
	return out
}
