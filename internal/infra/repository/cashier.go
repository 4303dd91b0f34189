package repository

import (
	"context"

	"caja-api/internal/domain/cashier"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CashSessionRepository relies on the partial unique index over
// status = 'open' to make "at most one open session" an atomic
// check-and-create instead of an application-level scan.
type CashSessionRepository struct {
	pool *pgxpool.Pool
}

func NewCashSessionRepository(pool *pgxpool.Pool) *CashSessionRepository {
	return &CashSessionRepository{pool: pool}
}

const cashSessionColumns = `id, start_date, start_amount, status, end_date, end_amount, created_at, updated_at`

func (r *CashSessionRepository) Create(ctx context.Context, s *cashier.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cash_sessions (id, start_date, start_amount, status)
		VALUES ($1, $2, $3, $4)`,
		s.ID(), s.StartDate(), pgconv.DecimalToNumeric(s.StartAmount()), s.Status().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("a cash session is already open", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create cash session", err)
	}
	return nil
}

func (r *CashSessionRepository) FindOpen(ctx context.Context) (*cashier.Session, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+cashSessionColumns+` FROM cash_sessions WHERE status = 'open'`)
	return r.scanSession(row)
}

func (r *CashSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*cashier.Session, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+cashSessionColumns+` FROM cash_sessions WHERE id = $1`, id)
	return r.scanSession(row)
}

// Close persists the terminal state. The status guard in the WHERE clause
// keeps a concurrent double-close from overwriting a closed session.
func (r *CashSessionRepository) Close(ctx context.Context, s *cashier.Session) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cash_sessions
		SET status = $2, end_date = $3, end_amount = $4, updated_at = now()
		WHERE id = $1 AND status = 'open'`,
		s.ID(), s.Status().String(), s.EndDate(), pgconv.DecimalPtrToNumeric(s.EndAmount()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close cash session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("open cash session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CashSessionRepository) List(ctx context.Context) ([]*cashier.Session, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cashSessionColumns+` FROM cash_sessions ORDER BY start_date DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cash sessions", err)
	}
	defer rows.Close()

	var result []*cashier.Session
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cash sessions", err)
	}
	return result, nil
}

func (r *CashSessionRepository) scanSession(row pgx.Row) (*cashier.Session, error) {
	var (
		id          uuid.UUID
		startDate   pgtype.Timestamptz
		startAmount pgtype.Numeric
		status      string
		endDate     pgtype.Timestamptz
		endAmount   pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&id, &startDate, &startAmount, &status, &endDate, &endAmount, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cash session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan cash session", err)
	}

	start, err := pgconv.DecimalFromNumeric(startAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored start amount is invalid", err)
	}
	end, err := pgconv.DecimalPtrFromNumeric(endAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored end amount is invalid", err)
	}

	return cashier.ReconstructSession(
		id,
		pgconv.TimeFromPgtype(startDate),
		start,
		cashier.Status(status),
		pgconv.TimePtrFromPgtype(endDate),
		end,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
