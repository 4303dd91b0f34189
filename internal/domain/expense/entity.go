package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription = errors.New("expense description is required")
	ErrNegativeAmount   = errors.New("expense amount cannot be negative")
	ErrInvalidCategory  = errors.New("invalid expense category")
	ErrInvalidType      = errors.New("invalid expense type")
)

type Expense struct {
	id          uuid.UUID
	date        time.Time
	description string
	amount      decimal.Decimal
	category    Category
	expenseType Type
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExpense(date time.Time, description string, amount decimal.Decimal, category Category, expenseType Type) (*Expense, error) {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return nil, ErrEmptyDescription
	case amount.IsNegative():
		return nil, ErrNegativeAmount
	case !category.IsValid():
		return nil, ErrInvalidCategory
	case !expenseType.IsValid():
		return nil, ErrInvalidType
	}

	return &Expense{
		id:          uuid.New(),
		date:        date,
		description: description,
		amount:      amount,
		category:    category,
		expenseType: expenseType,
	}, nil
}

func ReconstructExpense(
	id uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	category Category,
	expenseType Type,
	createdAt, updatedAt time.Time,
) *Expense {
	return &Expense{
		id:          id,
		date:        date,
		description: description,
		amount:      amount,
		category:    category,
		expenseType: expenseType,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Expense) ID() uuid.UUID           { return e.id }
func (e *Expense) Date() time.Time         { return e.date }
func (e *Expense) Description() string     { return e.description }
func (e *Expense) Amount() decimal.Decimal { return e.amount }
func (e *Expense) Category() Category      { return e.category }
func (e *Expense) Type() Type              { return e.expenseType }
func (e *Expense) CreatedAt() time.Time    { return e.createdAt }
func (e *Expense) UpdatedAt() time.Time    { return e.updatedAt }
