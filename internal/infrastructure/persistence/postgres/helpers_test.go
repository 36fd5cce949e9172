package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ouestbank/lending-service/internal/domain/fault"
)

func TestNotFound_MapsMissingRows(t *testing.T) {
	err := notFound(pgx.ErrNoRows, "loan", "loan-001")
	assert.ErrorIs(t, err, fault.ErrNotFound)
	assert.Contains(t, err.Error(), "loan-001")
}

func TestNotFound_WrapsDriverErrors(t *testing.T) {
	err := notFound(errors.New("connection reset"), "loan", "loan-001")
	assert.ErrorIs(t, err, fault.ErrInfrastructure)
	assert.NotErrorIs(t, err, fault.ErrNotFound)
}

func TestConflict(t *testing.T) {
	err := conflict("installment", "inst-007")
	assert.ErrorIs(t, err, fault.ErrConcurrencyConflict)
	assert.Contains(t, err.Error(), "inst-007")
}

func TestInfra(t *testing.T) {
	err := infra("save loan", errors.New("broken pipe"))
	assert.ErrorIs(t, err, fault.ErrInfrastructure)
	assert.Contains(t, err.Error(), "save loan")
}
