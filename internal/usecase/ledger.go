package usecase

import (
	"context"
	"errors"
	"time"

	"caja-api/internal/domain/ledger"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInUse       = errors.New("category is in use")
)

type TransactionRepository interface {
	Create(ctx context.Context, t *ledger.Transaction) error
	Update(ctx context.Context, t *ledger.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	List(ctx context.Context, from, to *time.Time) ([]*ledger.Transaction, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *ledger.Category) error
	List(ctx context.Context) ([]*ledger.Category, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetRepository interface {
	Upsert(ctx context.Context, b ledger.Budget) error
	Delete(ctx context.Context, categoryID uuid.UUID) error
	List(ctx context.Context) ([]ledger.Budget, error)
}

type TransactionParams struct {
	Date        time.Time
	Description string
	Amount      string
	Type        string
	CategoryID  uuid.UUID
}

type CategoryParams struct {
	Name string
	Type string
	Icon string
}

type LedgerUseCase interface {
	CreateTransaction(ctx context.Context, memberID uuid.UUID, params TransactionParams) (*readmodel.TransactionRM, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, params TransactionParams) (*readmodel.TransactionRM, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactions(ctx context.Context, from, to *time.Time) ([]*readmodel.TransactionRM, error)

	CreateCategory(ctx context.Context, params CategoryParams) (*readmodel.CategoryRM, error)
	ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	SetBudget(ctx context.Context, categoryID uuid.UUID, amount decimal.Decimal) error
	ListBudgets(ctx context.Context) ([]readmodel.BudgetRM, error)

	MonthlySummary(ctx context.Context, year int, month time.Month) (*readmodel.MonthlySummaryRM, error)
}

type ledgerUseCaseImpl struct {
	transactions TransactionRepository
	categories   CategoryRepository
	budgets      BudgetRepository
	location     *time.Location
}

func NewLedgerUseCase(
	transactions TransactionRepository,
	categories CategoryRepository,
	budgets BudgetRepository,
	location *time.Location,
) LedgerUseCase {
	return &ledgerUseCaseImpl{
		transactions: transactions,
		categories:   categories,
		budgets:      budgets,
		location:     location,
	}
}

func (u *ledgerUseCaseImpl) CreateTransaction(ctx context.Context, memberID uuid.UUID, params TransactionParams) (*readmodel.TransactionRM, error) {
	t, err := buildTransaction(memberID, params)
	if err != nil {
		return nil, err
	}

	if err := u.transactions.Create(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, errs.Wrap(err, "failed to create transaction")
	}
	return toTransactionRM(t), nil
}

func (u *ledgerUseCaseImpl) UpdateTransaction(ctx context.Context, id uuid.UUID, params TransactionParams) (*readmodel.TransactionRM, error) {
	existing, err := u.transactions.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTransactionNotFound)
		}
		return nil, errs.Wrap(err, "failed to find transaction")
	}

	t, err := buildTransaction(existing.MemberID(), params)
	if err != nil {
		return nil, err
	}
	t = ledger.ReconstructTransaction(
		existing.ID(), t.Date(), t.Description(), t.Amount(), t.Type(),
		t.CategoryID(), existing.MemberID(),
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	if err := u.transactions.Update(ctx, t); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrTransactionNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrCategoryNotFound)
		}
		return nil, errs.Wrap(err, "failed to update transaction")
	}
	return toTransactionRM(t), nil
}

func (u *ledgerUseCaseImpl) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := u.transactions.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrTransactionNotFound)
		}
		return errs.Wrap(err, "failed to delete transaction")
	}
	return nil
}

func (u *ledgerUseCaseImpl) ListTransactions(ctx context.Context, from, to *time.Time) ([]*readmodel.TransactionRM, error) {
	transactions, err := u.transactions.List(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list transactions")
	}

	result := make([]*readmodel.TransactionRM, len(transactions))
	for i, t := range transactions {
		result[i] = toTransactionRM(t)
	}
	return result, nil
}

func (u *ledgerUseCaseImpl) CreateCategory(ctx context.Context, params CategoryParams) (*readmodel.CategoryRM, error) {
	catType, err := ledger.NewTransactionType(params.Type)
	if err != nil {
		return nil, err
	}
	c, err := ledger.NewCategory(params.Name, catType, params.Icon)
	if err != nil {
		return nil, err
	}

	if err := u.categories.Create(ctx, c); err != nil {
		return nil, errs.Wrap(err, "failed to create category")
	}
	return toCategoryRM(c), nil
}

func (u *ledgerUseCaseImpl) ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list categories")
	}

	result := make([]*readmodel.CategoryRM, len(categories))
	for i, c := range categories {
		result[i] = toCategoryRM(c)
	}
	return result, nil
}

// DeleteCategory refuses while any transaction or budget still references the
// category, so history never points at a dangling id.
func (u *ledgerUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	inUse, err := u.categories.InUse(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check category usage")
	}
	if inUse {
		return ErrCategoryInUse
	}

	if err := u.categories.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrCategoryNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrCategoryInUse)
		}
		return errs.Wrap(err, "failed to delete category")
	}
	return nil
}

// SetBudget upserts for a positive amount and removes the budget otherwise; a
// zero budget and no budget are the same thing to the report.
func (u *ledgerUseCaseImpl) SetBudget(ctx context.Context, categoryID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		if err := u.budgets.Delete(ctx, categoryID); err != nil {
			return errs.Wrap(err, "failed to remove budget")
		}
		return nil
	}

	if err := u.budgets.Upsert(ctx, ledger.Budget{CategoryID: categoryID, Amount: amount}); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrCategoryNotFound)
		}
		return errs.Wrap(err, "failed to set budget")
	}
	return nil
}

func (u *ledgerUseCaseImpl) ListBudgets(ctx context.Context) ([]readmodel.BudgetRM, error) {
	budgets, err := u.budgets.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list budgets")
	}

	result := make([]readmodel.BudgetRM, len(budgets))
	for i, b := range budgets {
		result[i] = readmodel.BudgetRM{CategoryID: b.CategoryID, Amount: b.Amount}
	}
	return result, nil
}

// MonthlySummary aggregates one calendar month in the configured timezone:
// income and expense totals plus per-category expense spend against budgets.
func (u *ledgerUseCaseImpl) MonthlySummary(ctx context.Context, year int, month time.Month) (*readmodel.MonthlySummaryRM, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, u.location)
	to := from.AddDate(0, 1, 0)

	transactions, err := u.transactions.List(ctx, &from, &to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list transactions")
	}
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list categories")
	}
	budgets, err := u.budgets.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list budgets")
	}

	budgetByCategory := make(map[uuid.UUID]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		budgetByCategory[b.CategoryID] = b.Amount
	}

	income := decimal.Zero
	expenses := decimal.Zero
	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range transactions {
		if t.Type() == ledger.TypeIncome {
			income = income.Add(t.Amount())
			continue
		}
		expenses = expenses.Add(t.Amount())
		spentByCategory[t.CategoryID()] = spentByCategory[t.CategoryID()].Add(t.Amount())
	}

	summaries := make([]readmodel.CategorySummaryRM, 0, len(categories))
	for _, c := range categories {
		if c.Type() != ledger.TypeExpense {
			continue
		}
		row := readmodel.CategorySummaryRM{
			CategoryID: c.ID(),
			Name:       c.Name(),
			Spent:      spentByCategory[c.ID()],
		}
		if budget, ok := budgetByCategory[c.ID()]; ok {
			row.Budget = &budget
		}
		summaries = append(summaries, row)
	}

	return &readmodel.MonthlySummaryRM{
		From:       from,
		To:         to,
		Income:     income,
		Expenses:   expenses,
		Balance:    income.Sub(expenses),
		Categories: summaries,
	}, nil
}

func buildTransaction(memberID uuid.UUID, params TransactionParams) (*ledger.Transaction, error) {
	amount, err := decimalFromInput(params.Amount)
	if err != nil {
		return nil, err
	}
	txType, err := ledger.NewTransactionType(params.Type)
	if err != nil {
		return nil, err
	}
	return ledger.NewTransaction(params.Date, params.Description, amount, txType, params.CategoryID, memberID)
}

func toTransactionRM(t *ledger.Transaction) *readmodel.TransactionRM {
	return &readmodel.TransactionRM{
		ID:          t.ID(),
		Date:        t.Date(),
		Description: t.Description(),
		Amount:      t.Amount(),
		Type:        t.Type().String(),
		CategoryID:  t.CategoryID(),
		MemberID:    t.MemberID(),
	}
}

func toCategoryRM(c *ledger.Category) *readmodel.CategoryRM {
	return &readmodel.CategoryRM{
		ID:   c.ID(),
		Name: c.Name(),
		Type: c.Type().String(),
		Icon: c.Icon(),
	}
}
