//go:build unit

package response

import (
	"testing"
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustCopy(t *testing.T) {
	t.Run("maps read model fields onto the response", func(t *testing.T) {
		rm := &readmodel.ExpenseRM{
			ID:          uuid.New(),
			Date:        time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
			Description: "Garrafones de agua",
			Amount:      decimal.NewFromFloat(120.50),
			Category:    "insumos",
			Type:        "negocio",
		}

		resp := FromExpenseRM(rm)

		require.NotNil(t, resp)
		assert.Equal(t, rm.ID, resp.ID)
		assert.Equal(t, rm.Description, resp.Description)
		assert.True(t, resp.Amount.Equal(rm.Amount))
		assert.Equal(t, rm.Category, resp.Category)
	})

	t.Run("panics on an unmappable destination instead of serving zeros", func(t *testing.T) {
		var notAPointer ExpenseResponse
		assert.Panics(t, func() {
			mustCopy(notAPointer, &readmodel.ExpenseRM{})
		})
	})
}
