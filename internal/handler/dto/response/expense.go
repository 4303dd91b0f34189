package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
}

func FromExpenseRM(rm *readmodel.ExpenseRM) *ExpenseResponse {
	var resp ExpenseResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromExpenseRMs(rms []*readmodel.ExpenseRM) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromExpenseRM(rm)
	}
	return result
}
