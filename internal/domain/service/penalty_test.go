package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouestbank/lending-service/internal/domain/fault"
	"github.com/ouestbank/lending-service/internal/domain/service"
	"github.com/ouestbank/lending-service/pkg/money"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func standardPolicy() service.PenaltyPolicy {
	return service.PenaltyPolicy{
		Rate:       d("0.10"),
		GraceDays:  5,
		MinPenalty: money.New(d("500"), money.XOF),
		MaxPenalty: money.New(d("5000"), money.XOF),
	}
}

func TestPenaltyEngine_Assess(t *testing.T) {
	engine, err := service.NewPenaltyEngine(standardPolicy())
	require.NoError(t, err)

	total := money.New(d("10661.85"), money.XOF)

	t.Run("no penalty within the grace period", func(t *testing.T) {
		for _, days := range []int{0, 1, 5} {
			p, err := engine.Assess(total, days)
			require.NoError(t, err)
			assert.True(t, p.IsZero(), "days=%d got %s", days, p)
		}
	})

	t.Run("pro rata per day past grace", func(t *testing.T) {
		// 10661.85 * 0.10 * 30/30 = 1066.185 -> 1066.19
		p, err := engine.Assess(total, 30)
		require.NoError(t, err)
		assert.True(t, d("1066.19").Equal(p.Amount()), "got %s", p)
	})

	t.Run("clamped to the minimum", func(t *testing.T) {
		// 10661.85 * 0.10 * 7/30 = 248.78, below the 500 floor
		p, err := engine.Assess(total, 7)
		require.NoError(t, err)
		assert.True(t, d("500").Equal(p.Amount()), "got %s", p)
	})

	t.Run("clamped to the maximum", func(t *testing.T) {
		// 10661.85 * 0.10 * 300/30 = 10661.85, above the 5000 ceiling
		p, err := engine.Assess(total, 300)
		require.NoError(t, err)
		assert.True(t, d("5000").Equal(p.Amount()), "got %s", p)
	})

	t.Run("rejects negative days", func(t *testing.T) {
		_, err := engine.Assess(total, -1)
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})

	t.Run("keeps the installment currency", func(t *testing.T) {
		p, err := engine.Assess(money.New(d("100"), money.EUR), 2)
		require.NoError(t, err)
		assert.Equal(t, money.EUR, p.Currency())
	})
}

func TestPenaltyEngine_UnboundedPolicy(t *testing.T) {
	engine, err := service.NewPenaltyEngine(service.PenaltyPolicy{
		Rate:      d("0.10"),
		GraceDays: 0,
	})
	require.NoError(t, err)

	// Zero-valued bounds leave the raw penalty untouched.
	p, err := engine.Assess(money.New(d("10661.85"), money.XOF), 7)
	require.NoError(t, err)
	assert.True(t, d("248.78").Equal(p.Amount()), "got %s", p)
}

func TestNewPenaltyEngine_InvalidPolicy(t *testing.T) {
	t.Run("negative rate", func(t *testing.T) {
		_, err := service.NewPenaltyEngine(service.PenaltyPolicy{Rate: d("-0.1")})
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})

	t.Run("negative grace days", func(t *testing.T) {
		_, err := service.NewPenaltyEngine(service.PenaltyPolicy{Rate: d("0.1"), GraceDays: -1})
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := service.NewPenaltyEngine(service.PenaltyPolicy{
			Rate:       d("0.1"),
			MinPenalty: money.New(d("1000"), money.XOF),
			MaxPenalty: money.New(d("500"), money.XOF),
		})
		assert.ErrorIs(t, err, fault.ErrInvalidParameter)
	})
}
