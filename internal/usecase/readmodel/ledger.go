package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRM struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
	CategoryID  uuid.UUID
	MemberID    uuid.UUID
}

type CategoryRM struct {
	ID   uuid.UUID
	Name string
	Type string
	Icon string
}

type BudgetRM struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// CategorySummaryRM is one row of the monthly budget report.
type CategorySummaryRM struct {
	CategoryID uuid.UUID
	Name       string
	Spent      decimal.Decimal
	Budget     *decimal.Decimal
}

type MonthlySummaryRM struct {
	From       time.Time
	To         time.Time
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Balance    decimal.Decimal
	Categories []CategorySummaryRM
}
