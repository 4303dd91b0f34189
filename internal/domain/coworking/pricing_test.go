//go:build unit

package coworking_test

import (
	"testing"
	"time"

	"caja-api/internal/domain/coworking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestCalculateTimeCharge(t *testing.T) {
	pricing := coworking.DefaultPricing()

	tests := []struct {
		name        string
		elapsed     time.Duration
		wantMinutes int64
		wantCost    string
	}{
		{name: "45 minutes stays at base rate", elapsed: 45 * time.Minute, wantMinutes: 45, wantCost: "58"},
		{name: "exactly 60 minutes stays at base rate", elapsed: 60 * time.Minute, wantMinutes: 60, wantCost: "58"},
		{name: "61 minutes starts one extra block", elapsed: 61 * time.Minute, wantMinutes: 61, wantCost: "93"},
		{name: "90 minutes still one extra block", elapsed: 90 * time.Minute, wantMinutes: 90, wantCost: "93"},
		{name: "91 minutes starts a second block", elapsed: 91 * time.Minute, wantMinutes: 91, wantCost: "128"},
		{name: "zero elapsed charges nothing", elapsed: 0, wantMinutes: 0, wantCost: "0"},
		{name: "one second rounds up to the minimum charge", elapsed: time.Second, wantMinutes: 1, wantCost: "58"},
		{name: "partial minute rounds up", elapsed: 60*time.Minute + 30*time.Second, wantMinutes: 61, wantCost: "93"},
		{name: "three hours", elapsed: 180 * time.Minute, wantMinutes: 180, wantCost: "198"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge := pricing.CalculateTimeCharge(baseTime, baseTime.Add(tt.elapsed))

			assert.Equal(t, tt.wantMinutes, charge.Minutes)
			assert.True(t, charge.Cost.Equal(decimal.RequireFromString(tt.wantCost)),
				"cost = %s, want %s", charge.Cost, tt.wantCost)
		})
	}

	t.Run("negative interval clamps to zero instead of failing", func(t *testing.T) {
		charge := pricing.CalculateTimeCharge(baseTime, baseTime.Add(-10*time.Minute))

		assert.Equal(t, int64(0), charge.Minutes)
		assert.True(t, charge.Cost.IsZero())
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		end := baseTime.Add(75 * time.Minute)
		first := pricing.CalculateTimeCharge(baseTime, end)
		second := pricing.CalculateTimeCharge(baseTime, end)

		assert.Equal(t, first.Minutes, second.Minutes)
		assert.True(t, first.Cost.Equal(second.Cost))
	})
}

func TestExtrasTotal(t *testing.T) {
	t.Run("empty extras total zero", func(t *testing.T) {
		assert.True(t, coworking.ExtrasTotal(nil).IsZero())
	})

	t.Run("sums captured unit price times quantity", func(t *testing.T) {
		extras := []coworking.Extra{
			{ProductID: uuid.New(), Name: "Latte", UnitPrice: decimal.RequireFromString("20"), Quantity: 2},
			{ProductID: uuid.New(), Name: "Brownie", UnitPrice: decimal.RequireFromString("35.50"), Quantity: 1},
		}

		total := coworking.ExtrasTotal(extras)
		assert.True(t, total.Equal(decimal.RequireFromString("75.50")), "total = %s", total)
	})
}

func TestSessionQuoteAndFinish(t *testing.T) {
	pricing := coworking.DefaultPricing()

	t.Run("worked example: 61 minutes with extras", func(t *testing.T) {
		session, err := coworking.NewSession("Ana", baseTime)
		require.NoError(t, err)
		require.NoError(t, session.AddExtra(uuid.New(), "Latte", decimal.RequireFromString("20"), 2))

		end := baseTime.Add(61 * time.Minute)
		charge, err := session.Finish(pricing, end)
		require.NoError(t, err)

		assert.Equal(t, int64(61), charge.Minutes)
		assert.True(t, charge.Cost.Equal(decimal.RequireFromString("93")))
		assert.True(t, session.Total().Equal(decimal.RequireFromString("133")))
		assert.Equal(t, coworking.StatusFinished, session.Status())
		require.NotNil(t, session.EndTime())
		assert.Equal(t, end, *session.EndTime())
	})

	t.Run("finish is rejected once finished", func(t *testing.T) {
		session, err := coworking.NewSession("Ana", baseTime)
		require.NoError(t, err)

		_, err = session.Finish(pricing, baseTime.Add(time.Hour))
		require.NoError(t, err)

		_, err = session.Finish(pricing, baseTime.Add(2*time.Hour))
		assert.ErrorIs(t, err, coworking.ErrSessionNotActive)
	})

	t.Run("quote does not mutate the session", func(t *testing.T) {
		session, err := coworking.NewSession("Ana", baseTime)
		require.NoError(t, err)

		charge, extras := session.Quote(pricing, baseTime.Add(45*time.Minute))
		assert.Equal(t, int64(45), charge.Minutes)
		assert.True(t, charge.Cost.Equal(decimal.RequireFromString("58")))
		assert.True(t, extras.IsZero())
		assert.Equal(t, coworking.StatusActive, session.Status())
		assert.Nil(t, session.EndTime())
	})
}

func TestSessionExtras(t *testing.T) {
	productID := uuid.New()

	t.Run("adding the same product accumulates quantity", func(t *testing.T) {
		session, err := coworking.NewSession("Luis", baseTime)
		require.NoError(t, err)

		require.NoError(t, session.AddExtra(productID, "Latte", decimal.RequireFromString("20"), 1))
		require.NoError(t, session.AddExtra(productID, "Latte", decimal.RequireFromString("20"), 2))

		require.Len(t, session.Extras(), 1)
		assert.Equal(t, int32(3), session.Extras()[0].Quantity)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		session, err := coworking.NewSession("Luis", baseTime)
		require.NoError(t, err)

		err = session.AddExtra(productID, "Latte", decimal.RequireFromString("20"), 0)
		assert.ErrorIs(t, err, coworking.ErrInvalidQuantity)
	})

	t.Run("removing an unknown extra fails", func(t *testing.T) {
		session, err := coworking.NewSession("Luis", baseTime)
		require.NoError(t, err)

		err = session.RemoveExtra(uuid.New())
		assert.ErrorIs(t, err, coworking.ErrExtraNotFound)
	})

	t.Run("extras are frozen after finish", func(t *testing.T) {
		session, err := coworking.NewSession("Luis", baseTime)
		require.NoError(t, err)
		_, err = session.Finish(coworking.DefaultPricing(), baseTime.Add(time.Hour))
		require.NoError(t, err)

		err = session.AddExtra(productID, "Latte", decimal.RequireFromString("20"), 1)
		assert.ErrorIs(t, err, coworking.ErrSessionNotActive)
	})
}
