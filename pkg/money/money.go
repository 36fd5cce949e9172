// Package money fixes the monetary arithmetic policy for the lending
// platform: amounts carry 2 fractional digits, rates carry 10, and every
// precision-losing operation rounds half-up. Monetary values are
// exact-decimal throughout; binary floating point never enters the math.
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits kept on currency amounts.
	AmountScale = 2
	// RateScale is the number of fractional digits kept on interest rates.
	RateScale = 10

	monthsPerYear = 12
)

// RoundAmount rounds a currency amount to AmountScale, half-up.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// RoundRate rounds a rate to RateScale, half-up.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RateScale)
}

// MonthlyRate converts an annual rate expressed as a decimal fraction
// (0.12 for 12%) into the monthly periodic rate, RateScale digits, half-up.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.DivRound(decimal.NewFromInt(monthsPerYear), RateScale)
}

// PercentToFraction converts a percentage (12.5) into a decimal fraction
// (0.125) at RateScale precision.
func PercentToFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.DivRound(decimal.NewFromInt(100), RateScale)
}

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level
// variable initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string { return c.code }

// String returns the currency code.
func (c Currency) String() string { return c.code }

// Common currencies.
var (
	XOF = MustCurrency("XOF")
	EUR = MustCurrency("EUR")
	USD = MustCurrency("USD")
)

// ---------------------------------------------------------------------------
// Money
// ---------------------------------------------------------------------------

// Money represents an immutable monetary amount with currency.
// Fields are unexported to enforce immutability.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency. The amount is
// rounded to AmountScale.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: RoundAmount(amount), currency: currency}
}

// NewFromString parses an amount string and currency code into a Money value.
func NewFromString(amount string, currency string) (Money, error) {
	cur, err := NewCurrency(currency)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency: %w", err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return New(d, cur), nil
}

// Zero returns a Money value of zero in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency.
func (m Money) Currency() Currency { return m.currency }

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive returns true if the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Add returns the sum of m and other. Returns an error if the currencies do not match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot add %s to %s", other.currency, m.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of m minus other. Returns an error if the currencies do not match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot subtract %s from %s", other.currency, m.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Multiply returns m multiplied by the given factor, rounded to AmountScale.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: RoundAmount(m.amount.Mul(factor)), currency: m.currency}
}

// Clamp bounds m into [min, max]. Zero-valued bounds are ignored.
func (m Money) Clamp(min, max Money) Money {
	out := m
	if !min.IsZero() && out.amount.LessThan(min.amount) {
		out.amount = min.amount
	}
	if !max.IsZero() && out.amount.GreaterThan(max.amount) {
		out.amount = max.amount
	}
	return out
}

// Equal returns true if both the amount and currency of m and other are equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the Money value as "<amount> <currency>", for example "100.00 XOF".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(AmountScale), m.currency.Code())
}
