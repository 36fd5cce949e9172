package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/fault"
)

// LoanType is read-only reference data describing a loan product: its rate
// and the amount and duration bounds a demand must satisfy.
type LoanType struct {
	id                string
	code              string
	label             string
	annualRate        decimal.Decimal
	minAmount         decimal.Decimal
	maxAmount         decimal.Decimal
	minDurationMonths int
	maxDurationMonths int
	processingFeeRate decimal.Decimal
	active            bool
}

// ReconstructLoanType rebuilds a LoanType from persistence.
func ReconstructLoanType(
	id, code, label string,
	annualRate, minAmount, maxAmount decimal.Decimal,
	minDurationMonths, maxDurationMonths int,
	processingFeeRate decimal.Decimal,
	active bool,
) LoanType {
	return LoanType{
		id:                id,
		code:              code,
		label:             label,
		annualRate:        annualRate,
		minAmount:         minAmount,
		maxAmount:         maxAmount,
		minDurationMonths: minDurationMonths,
		maxDurationMonths: maxDurationMonths,
		processingFeeRate: processingFeeRate,
		active:            active,
	}
}

// CheckEligibility verifies that the requested amount and duration fall within
// the product bounds. Bounds are inclusive.
func (t LoanType) CheckEligibility(amount decimal.Decimal, durationMonths int) error {
	if !t.active {
		return fmt.Errorf("%w: loan type %s is not offered", fault.ErrNotEligible, t.code)
	}
	if amount.LessThan(t.minAmount) || amount.GreaterThan(t.maxAmount) {
		return fmt.Errorf("%w: amount %s outside [%s, %s] for type %s",
			fault.ErrNotEligible, amount, t.minAmount, t.maxAmount, t.code)
	}
	if durationMonths < t.minDurationMonths || durationMonths > t.maxDurationMonths {
		return fmt.Errorf("%w: duration %d outside [%d, %d] months for type %s",
			fault.ErrNotEligible, durationMonths, t.minDurationMonths, t.maxDurationMonths, t.code)
	}
	return nil
}

// ProcessingFee returns the file fee for a granted amount, rounded to the cent.
func (t LoanType) ProcessingFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.processingFeeRate).Round(2)
}

func (t LoanType) ID() string                         { return t.id }
func (t LoanType) Code() string                       { return t.code }
func (t LoanType) Label() string                      { return t.label }
func (t LoanType) AnnualRate() decimal.Decimal        { return t.annualRate }
func (t LoanType) MinAmount() decimal.Decimal         { return t.minAmount }
func (t LoanType) MaxAmount() decimal.Decimal         { return t.maxAmount }
func (t LoanType) MinDurationMonths() int             { return t.minDurationMonths }
func (t LoanType) MaxDurationMonths() int             { return t.maxDurationMonths }
func (t LoanType) ProcessingFeeRate() decimal.Decimal { return t.processingFeeRate }
func (t LoanType) Active() bool                       { return t.active }
