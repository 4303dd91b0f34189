//go:build unit || e2e

package builder

import (
	"time"

	reqdto "caja-api/internal/handler/dto/request"
	"caja-api/internal/usecase"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseBuilder struct {
	Date        time.Time
	Description string
	Amount      string
	Category    string
	Type        string
}

func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{
		Date:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Description: "Recibo de luz",
		Amount:      "480.50",
		Category:    "luz",
		Type:        "frecuente",
	}
}

func (e *ExpenseBuilder) With(mutate func(*ExpenseBuilder)) *ExpenseBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *ExpenseBuilder) BuildReadModel() *readmodel.ExpenseRM {
	amount, _ := decimal.NewFromString(e.Amount)
	return &readmodel.ExpenseRM{
		ID:          uuid.New(),
		Date:        e.Date,
		Description: e.Description,
		Amount:      amount,
		Category:    e.Category,
		Type:        e.Type,
	}
}

func (e *ExpenseBuilder) BuildRequestDTO() reqdto.ExpenseRequest {
	return reqdto.ExpenseRequest{
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Type:        e.Type,
	}
}

func (e *ExpenseBuilder) BuildParams() usecase.ExpenseParams {
	return usecase.ExpenseParams{
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Type:        e.Type,
	}
}

// Fluent builder methods
func (e *ExpenseBuilder) WithDescription(description string) *ExpenseBuilder {
	e.Description = description
	return e
}

func (e *ExpenseBuilder) WithAmount(amount string) *ExpenseBuilder {
	e.Amount = amount
	return e
}

func (e *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	e.Category = category
	return e
}

func (e *ExpenseBuilder) AsEmergency() *ExpenseBuilder {
	e.Type = "emergente"
	return e
}
