package repository

import (
	"context"
	"time"

	"caja-api/internal/domain/expense"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, date, description, amount, category, type, created_at, updated_at`

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (id, date, description, amount, category, type)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID(), e.Date(), e.Description(), pgconv.DecimalToNumeric(e.Amount()),
		e.Category().String(), e.Type().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create expense", err)
	}
	return nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE expenses
		SET date = $2, description = $3, amount = $4, category = $5, type = $6, updated_at = now()
		WHERE id = $1`,
		e.ID(), e.Date(), e.Description(), pgconv.DecimalToNumeric(e.Amount()),
		e.Category().String(), e.Type().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	return r.scanExpense(row)
}

func (r *ExpenseRepository) List(ctx context.Context, from, to *time.Time) ([]*expense.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE ($1::timestamptz IS NULL OR date >= $1) AND ($2::timestamptz IS NULL OR date < $2)
		ORDER BY date DESC`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	defer rows.Close()

	var result []*expense.Expense
	for rows.Next() {
		e, err := r.scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expenses", err)
	}
	return result, nil
}

// SumAmounts totals expense amounts over the half-open interval [from, to).
func (r *ExpenseRepository) SumAmounts(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= $1 AND date < $2`,
		from, to,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum expenses", err)
	}

	total, err := pgconv.DecimalFromNumeric(sum)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("stored expense total is invalid", err)
	}
	return total, nil
}

func (r *ExpenseRepository) scanExpense(row pgx.Row) (*expense.Expense, error) {
	var (
		id          uuid.UUID
		date        time.Time
		description string
		amount      pgtype.Numeric
		category    string
		expType     string
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&id, &date, &description, &amount, &category, &expType, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("expense not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan expense", err)
	}

	amt, err := pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored amount is invalid", err)
	}

	return expense.ReconstructExpense(
		id, date, description, amt,
		expense.Category(category), expense.Type(expType),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
