package usecase

import (
	"context"
	"errors"
	"time"

	"caja-api/internal/domain/expense"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository interface {
	Create(ctx context.Context, e *expense.Expense) error
	Update(ctx context.Context, e *expense.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error)
	List(ctx context.Context, from, to *time.Time) ([]*expense.Expense, error)
	SumAmounts(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type ExpenseParams struct {
	Date        time.Time
	Description string
	Amount      string
	Category    string
	Type        string
}

type ExpenseUseCase interface {
	CreateExpense(ctx context.Context, params ExpenseParams) (*readmodel.ExpenseRM, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, params ExpenseParams) (*readmodel.ExpenseRM, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, from, to *time.Time) ([]*readmodel.ExpenseRM, error)
}

type expenseUseCaseImpl struct {
	expenses ExpenseRepository
}

func NewExpenseUseCase(expenses ExpenseRepository) ExpenseUseCase {
	return &expenseUseCaseImpl{expenses: expenses}
}

func (u *expenseUseCaseImpl) CreateExpense(ctx context.Context, params ExpenseParams) (*readmodel.ExpenseRM, error) {
	e, err := buildExpense(params)
	if err != nil {
		return nil, err
	}

	if err := u.expenses.Create(ctx, e); err != nil {
		return nil, errs.Wrap(err, "failed to create expense")
	}
	return toExpenseRM(e), nil
}

func (u *expenseUseCaseImpl) UpdateExpense(ctx context.Context, id uuid.UUID, params ExpenseParams) (*readmodel.ExpenseRM, error) {
	existing, err := u.expenses.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExpenseNotFound)
		}
		return nil, errs.Wrap(err, "failed to find expense")
	}

	e, err := buildExpense(params)
	if err != nil {
		return nil, err
	}
	e = expense.ReconstructExpense(
		existing.ID(), e.Date(), e.Description(), e.Amount(),
		e.Category(), e.Type(),
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	if err := u.expenses.Update(ctx, e); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExpenseNotFound)
		}
		return nil, errs.Wrap(err, "failed to update expense")
	}
	return toExpenseRM(e), nil
}

func (u *expenseUseCaseImpl) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := u.expenses.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrExpenseNotFound)
		}
		return errs.Wrap(err, "failed to delete expense")
	}
	return nil
}

func (u *expenseUseCaseImpl) ListExpenses(ctx context.Context, from, to *time.Time) ([]*readmodel.ExpenseRM, error) {
	expenses, err := u.expenses.List(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list expenses")
	}

	result := make([]*readmodel.ExpenseRM, len(expenses))
	for i, e := range expenses {
		result[i] = toExpenseRM(e)
	}
	return result, nil
}

func buildExpense(params ExpenseParams) (*expense.Expense, error) {
	amount, err := decimalFromInput(params.Amount)
	if err != nil {
		return nil, err
	}
	return expense.NewExpense(
		params.Date, params.Description, amount,
		expense.Category(params.Category), expense.Type(params.Type),
	)
}

func toExpenseRM(e *expense.Expense) *readmodel.ExpenseRM {
	return &readmodel.ExpenseRM{
		ID:          e.ID(),
		Date:        e.Date(),
		Description: e.Description(),
		Amount:      e.Amount(),
		Category:    e.Category().String(),
		Type:        e.Type().String(),
	}
}
