// Package service hosts domain services that operate across aggregates.
package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/pkg/money"
)

// PenaltyPolicy is the reference data driving late-fee assessment: a monthly
// rate applied pro rata per day of lateness, a grace period, and an absolute
// floor and ceiling on the assessed amount.
type PenaltyPolicy struct {
	Rate       decimal.Decimal
	GraceDays  int
	MinPenalty money.Money
	MaxPenalty money.Money
}

// Validate checks the policy for internal consistency.
func (p PenaltyPolicy) Validate() error {
	if p.Rate.IsNegative() {
		return fmt.Errorf("%w: penalty rate must not be negative", fault.ErrInvalidParameter)
	}
	if p.GraceDays < 0 {
		return fmt.Errorf("%w: grace days must not be negative", fault.ErrInvalidParameter)
	}
	if !p.MinPenalty.IsZero() && !p.MaxPenalty.IsZero() &&
		p.MinPenalty.Amount().GreaterThan(p.MaxPenalty.Amount()) {
		return fmt.Errorf("%w: minimum penalty exceeds maximum", fault.ErrInvalidParameter)
	}
	return nil
}

// PenaltyEngine assesses late fees on overdue installments.
type PenaltyEngine struct {
	policy PenaltyPolicy
}

// NewPenaltyEngine creates a penalty engine for the given policy.
func NewPenaltyEngine(policy PenaltyPolicy) (*PenaltyEngine, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &PenaltyEngine{policy: policy}, nil
}

// Assess computes the penalty owed on an installment of the given total that
// is daysLate days overdue:
//
//	penalty = round2(total * rate * daysLate / 30)
//
// clamped into [MinPenalty, MaxPenalty]. Within the grace period the penalty
// is zero.
func (e *PenaltyEngine) Assess(installmentTotal money.Money, daysLate int) (money.Money, error) {
	if daysLate < 0 {
		return money.Money{}, fmt.Errorf("%w: days late must not be negative", fault.ErrInvalidParameter)
	}
	if daysLate <= e.policy.GraceDays {
		return money.Zero(installmentTotal.Currency()), nil
	}

	prorated := e.policy.Rate.
		Mul(decimal.NewFromInt(int64(daysLate))).
		DivRound(decimal.NewFromInt(30), money.RateScale)
	raw := installmentTotal.Multiply(prorated)

	return raw.Clamp(e.policy.MinPenalty, e.policy.MaxPenalty), nil
}

// Policy returns the policy the engine was built with.
func (e *PenaltyEngine) Policy() PenaltyPolicy { return e.policy }
