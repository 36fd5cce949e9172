package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/pkg/money"
)

// ScheduleLine is an immutable value object representing one period of an
// amortization schedule.
type ScheduleLine struct {
	DueDate          time.Time
	PrincipalPortion decimal.Decimal
	InterestPortion  decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Sequence         int
}

// Schedule is a complete constant-payment amortization plan.
type Schedule struct {
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalDue       decimal.Decimal
	Lines          []ScheduleLine
}

// ComputeMonthlyPayment returns the constant monthly payment for a loan of the
// given principal, annual rate (decimal fraction, e.g. 0.12 for 12%) and term.
//
//	r       = annualRate / 12, rounded to 10 decimal places
//	payment = P * r / (1 - (1+r)^-n), rounded to 2 decimal places
//
// A zero rate degenerates to an even split of the principal.
func ComputeMonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if err := validateScheduleInputs(principal, annualRate, termMonths); err != nil {
		return decimal.Decimal{}, err
	}

	months := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return money.RoundAmount(principal.Div(months)), nil
	}

	r := money.MonthlyRate(annualRate)
	// P * r / (1 - (1+r)^-n) rearranged to P * r * (1+r)^n / ((1+r)^n - 1) so
	// the only division is the final one. (1+r)^n is exact in decimal.
	compound := decimal.NewFromInt(1).Add(r).Pow(months)
	payment := principal.Mul(r).Mul(compound).DivRound(compound.Sub(decimal.NewFromInt(1)), money.RateScale)
	return money.RoundAmount(payment), nil
}

// ComputeSchedule builds the full amortization schedule. Interest for each
// period is the remaining balance times the monthly rate, rounded to the cent;
// the principal portion is the payment minus that interest. The final period
// absorbs accumulated rounding drift: its principal portion is forced to the
// exact remaining balance so the plan always repays the principal to the cent.
func ComputeSchedule(principal, annualRate decimal.Decimal, termMonths int, firstDue time.Time) (Schedule, error) {
	payment, err := ComputeMonthlyPayment(principal, annualRate, termMonths)
	if err != nil {
		return Schedule{}, err
	}

	r := money.MonthlyRate(annualRate)
	lines := make([]ScheduleLine, 0, termMonths)
	remaining := principal
	totalInterest := decimal.Zero

	for seq := 1; seq <= termMonths; seq++ {
		dueDate := firstDue.AddDate(0, seq-1, 0)

		interest := money.RoundAmount(remaining.Mul(r))
		principalPart := payment.Sub(interest)
		total := payment

		if seq == termMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		totalInterest = totalInterest.Add(interest)

		lines = append(lines, ScheduleLine{
			Sequence:         seq,
			DueDate:          dueDate,
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			Total:            total,
			RemainingBalance: remaining,
		})
	}

	return Schedule{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalDue:       principal.Add(totalInterest),
		Lines:          lines,
	}, nil
}

func validateScheduleInputs(principal, annualRate decimal.Decimal, termMonths int) error {
	if principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive, got %s", fault.ErrInvalidParameter, principal)
	}
	if annualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate must not be negative, got %s", fault.ErrInvalidParameter, annualRate)
	}
	if annualRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: annual rate is a fraction, got %s", fault.ErrInvalidParameter, annualRate)
	}
	if termMonths <= 0 {
		return fmt.Errorf("%w: term months must be positive, got %d", fault.ErrInvalidParameter, termMonths)
	}
	return nil
}
