package request

import (
	"time"

	"caja-api/internal/usecase"

	"github.com/google/uuid"
)

type TransactionRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Amount      string    `json:"amount" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=income expense"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
}

func (r *TransactionRequest) ToParams() usecase.TransactionParams {
	return usecase.TransactionParams{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		CategoryID:  r.CategoryID,
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=income expense"`
	Icon string `json:"icon"`
}

type SetBudgetRequest struct {
	Amount string `json:"amount" binding:"required"`
}
