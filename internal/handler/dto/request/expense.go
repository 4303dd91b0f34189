package request

import (
	"time"

	"caja-api/internal/usecase"
)

type ExpenseRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      string    `json:"amount" binding:"required"`
	Category    string    `json:"category" binding:"required,oneof=luz internet sueldos inventario otro"`
	Type        string    `json:"type" binding:"required,oneof=frecuente emergente"`
}

func (r *ExpenseRequest) ToParams() usecase.ExpenseParams {
	return usecase.ExpenseParams{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Type:        r.Type,
	}
}
