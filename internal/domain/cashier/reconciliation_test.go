//go:build unit

package cashier_test

import (
	"testing"
	"time"

	"caja-api/internal/domain/cashier"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name           string
		start          string
		cashSales      string
		cashExpenses   string
		counted        string
		wantExpected   string
		wantDifference string
		wantVerdict    cashier.Verdict
	}{
		{
			name:  "balanced drawer",
			start: "300", cashSales: "450.50", cashExpenses: "120.00", counted: "630.50",
			wantExpected: "630.50", wantDifference: "0", wantVerdict: cashier.VerdictBalanced,
		},
		{
			name:  "shortfall",
			start: "300", cashSales: "450.50", cashExpenses: "120.00", counted: "600.00",
			wantExpected: "630.50", wantDifference: "-30.50", wantVerdict: cashier.VerdictShortfall,
		},
		{
			name:  "surplus",
			start: "300", cashSales: "450.50", cashExpenses: "120.00", counted: "650.00",
			wantExpected: "630.50", wantDifference: "19.50", wantVerdict: cashier.VerdictSurplus,
		},
		{
			// Negative expected signals a data-entry problem upstream and is
			// surfaced, never clamped.
			name:  "expenses exceeding float surface a negative expected amount",
			start: "100", cashSales: "20", cashExpenses: "500", counted: "0",
			wantExpected: "-380", wantDifference: "380", wantVerdict: cashier.VerdictSurplus,
		},
		{
			name:  "repeated cent additions stay exact",
			start: "0.10", cashSales: "0.20", cashExpenses: "0", counted: "0.30",
			wantExpected: "0.30", wantDifference: "0", wantVerdict: cashier.VerdictBalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := cashier.Reconcile(dec(tt.start), dec(tt.cashSales), dec(tt.cashExpenses), dec(tt.counted))

			assert.True(t, rec.Expected.Equal(dec(tt.wantExpected)), "expected = %s", rec.Expected)
			assert.True(t, rec.Difference.Equal(dec(tt.wantDifference)), "difference = %s", rec.Difference)
			assert.Equal(t, tt.wantVerdict, rec.Verdict)
		})
	}
}

func TestExpectedAmount(t *testing.T) {
	t.Run("sums float and cash sales minus cash expenses", func(t *testing.T) {
		got := cashier.ExpectedAmount(dec("300"), dec("450.50"), dec("120.00"))
		assert.True(t, got.Equal(dec("630.50")), "expected = %s", got)
	})

	// The mid-day drawer report and the closing reconciliation both lean on
	// this helper, so the two views can never disagree on the expected cash.
	t.Run("matches what Reconcile reports", func(t *testing.T) {
		start, sales, expenses := dec("500"), dec("1234.55"), dec("87.20")

		rec := cashier.Reconcile(start, sales, expenses, dec("0"))
		assert.True(t, rec.Expected.Equal(cashier.ExpectedAmount(start, sales, expenses)))
	})
}

func TestSessionClose(t *testing.T) {
	openedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	closedAt := openedAt.Add(10 * time.Hour)

	t.Run("close reconciles and becomes terminal", func(t *testing.T) {
		session, err := cashier.NewSession(dec("300"), openedAt)
		require.NoError(t, err)
		require.True(t, session.IsOpen())

		rec, err := session.Close(dec("630.50"), dec("450.50"), dec("120.00"), closedAt)
		require.NoError(t, err)

		assert.True(t, rec.Difference.IsZero())
		assert.Equal(t, cashier.VerdictBalanced, rec.Verdict)
		assert.Equal(t, cashier.StatusClosed, session.Status())
		require.NotNil(t, session.EndAmount())
		assert.True(t, session.EndAmount().Equal(dec("630.50")))
		require.NotNil(t, session.EndDate())
		assert.Equal(t, closedAt, *session.EndDate())

		_, err = session.Close(dec("630.50"), dec("450.50"), dec("120.00"), closedAt)
		assert.ErrorIs(t, err, cashier.ErrSessionClosed)
	})

	t.Run("negative start amount rejected", func(t *testing.T) {
		_, err := cashier.NewSession(dec("-1"), openedAt)
		assert.ErrorIs(t, err, cashier.ErrNegativeStartAmount)
	})

	t.Run("negative counted amount rejected", func(t *testing.T) {
		session, err := cashier.NewSession(dec("300"), openedAt)
		require.NoError(t, err)

		_, err = session.Close(dec("-5"), dec("0"), dec("0"), closedAt)
		assert.ErrorIs(t, err, cashier.ErrNegativeEndAmount)
	})
}
