//go:build unit

package order_test

import (
	"testing"
	"time"

	"caja-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()

	t.Run("total is recomputed from line items", func(t *testing.T) {
		items := []order.LineItem{
			{ProductID: &productID, Name: "Latte", UnitPrice: decimal.RequireFromString("45.50"), Quantity: 2},
			{Name: "Coworking: Ana", UnitPrice: decimal.RequireFromString("93"), Quantity: 1},
		}

		o, err := order.NewOrder(now, items, nil, order.ServiceCoworking, order.PaymentCash)
		require.NoError(t, err)

		assert.True(t, o.Total().Equal(decimal.RequireFromString("184")), "total = %s", o.Total())
		assert.True(t, o.IsCash())
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		_, err := order.NewOrder(now, nil, nil, order.ServiceTable, order.PaymentCash)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		items := []order.LineItem{{ProductID: &productID, Name: "Latte", UnitPrice: decimal.New(10, 0), Quantity: 0}}
		_, err := order.NewOrder(now, items, nil, order.ServiceTable, order.PaymentCard)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("unknown payment method rejected", func(t *testing.T) {
		items := []order.LineItem{{ProductID: &productID, Name: "Latte", UnitPrice: decimal.New(10, 0), Quantity: 1}}
		_, err := order.NewOrder(now, items, nil, order.ServiceTable, order.PaymentMethod("bitcoin"))
		assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
	})
}
