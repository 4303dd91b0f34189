package repository

import (
	"context"
	"time"

	"caja-api/internal/domain/ledger"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, date, description, amount, type, category_id, member_id, created_at, updated_at`

func (r *TransactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (id, date, description, amount, type, category_id, member_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID(), t.Date(), t.Description(), pgconv.DecimalToNumeric(t.Amount()),
		t.Type().String(), t.CategoryID(), t.MemberID(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("transaction references unknown category or member", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *ledger.Transaction) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET date = $2, description = $3, amount = $4, type = $5, category_id = $6, updated_at = now()
		WHERE id = $1`,
		t.ID(), t.Date(), t.Description(), pgconv.DecimalToNumeric(t.Amount()),
		t.Type().String(), t.CategoryID(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("transaction references unknown category", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	return r.scanTransaction(row)
}

func (r *TransactionRepository) List(ctx context.Context, from, to *time.Time) ([]*ledger.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE ($1::timestamptz IS NULL OR date >= $1) AND ($2::timestamptz IS NULL OR date < $2)
		ORDER BY date DESC`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var result []*ledger.Transaction
	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return result, nil
}

func (r *TransactionRepository) scanTransaction(row pgx.Row) (*ledger.Transaction, error) {
	var (
		id          uuid.UUID
		date        time.Time
		description string
		amount      pgtype.Numeric
		txType      string
		categoryID  uuid.UUID
		memberID    uuid.UUID
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&id, &date, &description, &amount, &txType, &categoryID, &memberID, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan transaction", err)
	}

	amt, err := pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored amount is invalid", err)
	}

	return ledger.ReconstructTransaction(
		id, date, description, amt,
		ledger.TransactionType(txType), categoryID, memberID,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *ledger.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transaction_categories (id, name, type, icon)
		VALUES ($1, $2, $3, $4)`,
		c.ID(), c.Name(), c.Type().String(), c.Icon(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("category already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*ledger.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, type, icon FROM transaction_categories ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var result []*ledger.Category
	for rows.Next() {
		var (
			id      uuid.UUID
			name    string
			catType string
			icon    string
		)
		if err := rows.Scan(&id, &name, &catType, &icon); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		result = append(result, ledger.ReconstructCategory(id, name, ledger.TransactionType(catType), icon))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate categories", err)
	}
	return result, nil
}

// InUse reports whether any transaction or budget still references the
// category; deletion is refused while it does.
func (r *CategoryRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var inUse bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1)
		    OR EXISTS (SELECT 1 FROM budgets WHERE category_id = $1)`,
		id,
	).Scan(&inUse)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check category usage", err)
	}
	return inUse, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transaction_categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("category is in use", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

func (r *BudgetRepository) Upsert(ctx context.Context, b ledger.Budget) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO budgets (category_id, amount)
		VALUES ($1, $2)
		ON CONFLICT (category_id) DO UPDATE SET amount = EXCLUDED.amount`,
		b.CategoryID, pgconv.DecimalToNumeric(b.Amount),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("budget references unknown category", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert budget", err)
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, categoryID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM budgets WHERE category_id = $1`, categoryID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete budget", err)
	}
	return nil
}

func (r *BudgetRepository) List(ctx context.Context) ([]ledger.Budget, error) {
	rows, err := r.pool.Query(ctx, `SELECT category_id, amount FROM budgets`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list budgets", err)
	}
	defer rows.Close()

	var result []ledger.Budget
	for rows.Next() {
		var (
			categoryID uuid.UUID
			amount     pgtype.Numeric
		)
		if err := rows.Scan(&categoryID, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan budget", err)
		}
		amt, err := pgconv.DecimalFromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("stored budget amount is invalid", err)
		}
		result = append(result, ledger.Budget{CategoryID: categoryID, Amount: amt})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate budgets", err)
	}
	return result, nil
}
