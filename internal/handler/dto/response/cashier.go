package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashSessionResponse struct {
	ID          uuid.UUID        `json:"id"`
	StartDate   time.Time        `json:"start_date"`
	StartAmount decimal.Decimal  `json:"start_amount"`
	Status      string           `json:"status"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	EndAmount   *decimal.Decimal `json:"end_amount,omitempty"`
}

type DrawerReportResponse struct {
	Session      CashSessionResponse `json:"session"`
	CashSales    decimal.Decimal     `json:"cash_sales"`
	CardSales    decimal.Decimal     `json:"card_sales"`
	CashExpenses decimal.Decimal     `json:"cash_expenses"`
	ExpectedCash decimal.Decimal     `json:"expected_cash"`
}

type CashCloseResponse struct {
	Session      CashSessionResponse `json:"session"`
	CashSales    decimal.Decimal     `json:"cash_sales"`
	CashExpenses decimal.Decimal     `json:"cash_expenses"`
	Expected     decimal.Decimal     `json:"expected"`
	Difference   decimal.Decimal     `json:"difference"`
	Verdict      string              `json:"verdict"`
}

func FromCashSessionRM(rm *readmodel.CashSessionRM) *CashSessionResponse {
	var resp CashSessionResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromCashSessionRMs(rms []*readmodel.CashSessionRM) []*CashSessionResponse {
	result := make([]*CashSessionResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromCashSessionRM(rm)
	}
	return result
}

func FromDrawerReportRM(rm *readmodel.DrawerReportRM) *DrawerReportResponse {
	var resp DrawerReportResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromCashCloseRM(rm *readmodel.CashCloseRM) *CashCloseResponse {
	var resp CashCloseResponse
	mustCopy(&resp, rm)
	return &resp
}
