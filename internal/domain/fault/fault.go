// Package fault defines the error taxonomy shared by the lending domain.
// Callers classify failures with errors.Is against the sentinel values and
// attach detail by wrapping them with fmt.Errorf and %w.
package fault

import "errors"

var (
	// ErrInvalidParameter marks a structurally invalid input such as a
	// non-positive amount, an out-of-range rate or a zero duration.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotEligible marks a request that is well formed but violates a
	// business rule, amount or duration outside the loan type bounds for
	// example.
	ErrNotEligible = errors.New("not eligible")

	// ErrNotFound marks a lookup of an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an operation attempted in a lifecycle state
	// that does not permit it, approving an already approved loan for
	// example.
	ErrInvalidState = errors.New("invalid state")

	// ErrConcurrencyConflict marks a lost optimistic-locking race. The
	// caller may reload and retry.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrInfrastructure marks a failure of an underlying dependency
	// (database, broker). It never signals a business condition.
	ErrInfrastructure = errors.New("infrastructure failure")
)
