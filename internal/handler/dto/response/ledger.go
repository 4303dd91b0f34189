package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  uuid.UUID       `json:"category_id"`
	MemberID    uuid.UUID       `json:"member_id"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
	Icon string    `json:"icon"`
}

type BudgetResponse struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type CategorySummaryResponse struct {
	CategoryID uuid.UUID        `json:"category_id"`
	Name       string           `json:"name"`
	Spent      decimal.Decimal  `json:"spent"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
}

type MonthlySummaryResponse struct {
	From       time.Time                 `json:"from"`
	To         time.Time                 `json:"to"`
	Income     decimal.Decimal           `json:"income"`
	Expenses   decimal.Decimal           `json:"expenses"`
	Balance    decimal.Decimal           `json:"balance"`
	Categories []CategorySummaryResponse `json:"categories"`
}

func FromTransactionRM(rm *readmodel.TransactionRM) *TransactionResponse {
	var resp TransactionResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromTransactionRMs(rms []*readmodel.TransactionRM) []*TransactionResponse {
	result := make([]*TransactionResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromTransactionRM(rm)
	}
	return result
}

func FromCategoryRM(rm *readmodel.CategoryRM) *CategoryResponse {
	var resp CategoryResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromCategoryRMs(rms []*readmodel.CategoryRM) []*CategoryResponse {
	result := make([]*CategoryResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromCategoryRM(rm)
	}
	return result
}

func FromBudgetRMs(rms []readmodel.BudgetRM) []BudgetResponse {
	result := make([]BudgetResponse, len(rms))
	for i, rm := range rms {
		result[i] = BudgetResponse{CategoryID: rm.CategoryID, Amount: rm.Amount}
	}
	return result
}

func FromMonthlySummaryRM(rm *readmodel.MonthlySummaryRM) *MonthlySummaryResponse {
	var resp MonthlySummaryResponse
	mustCopy(&resp, rm)
	if resp.Categories == nil {
		resp.Categories = []CategorySummaryResponse{}
	}
	return &resp
}
