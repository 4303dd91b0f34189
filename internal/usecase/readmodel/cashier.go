package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashSessionRM struct {
	ID          uuid.UUID
	StartDate   time.Time
	StartAmount decimal.Decimal
	Status      string
	EndDate     *time.Time
	EndAmount   *decimal.Decimal
}

// DrawerReportRM is the live view of the open drawer over [StartDate, now).
type DrawerReportRM struct {
	Session      CashSessionRM
	CashSales    decimal.Decimal
	CardSales    decimal.Decimal
	CashExpenses decimal.Decimal
	ExpectedCash decimal.Decimal
}

// CashCloseRM is the result of day-close: the terminal session plus the
// reconciliation against the counted amount.
type CashCloseRM struct {
	Session      CashSessionRM
	CashSales    decimal.Decimal
	CashExpenses decimal.Decimal
	Expected     decimal.Decimal
	Difference   decimal.Decimal
	Verdict      string
}
