package repository

import (
	"context"

	"caja-api/internal/domain/coworking"
	"caja-api/internal/domain/order"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoworkingRepository struct {
	pool *pgxpool.Pool
}

func NewCoworkingRepository(pool *pgxpool.Pool) *CoworkingRepository {
	return &CoworkingRepository{pool: pool}
}

const coworkingColumns = `id, client_name, start_time, end_time, status, total, created_at, updated_at`

func (r *CoworkingRepository) Create(ctx context.Context, s *coworking.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO coworking_sessions (id, client_name, start_time, status, total)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID(), s.ClientName(), s.StartTime(), s.Status().String(),
		pgconv.DecimalToNumeric(s.Total()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coworking session", err)
	}
	return nil
}

func (r *CoworkingRepository) FindByID(ctx context.Context, id uuid.UUID) (*coworking.Session, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+coworkingColumns+` FROM coworking_sessions WHERE id = $1`, id)
	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}

	extras, err := r.loadExtras(ctx, []uuid.UUID{s.ID()})
	if err != nil {
		return nil, err
	}
	return withExtras(s, extras[s.ID()]), nil
}

// SaveExtras replaces the session's consumed extras with the entity state.
func (r *CoworkingRepository) SaveExtras(ctx context.Context, s *coworking.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM coworking_extras WHERE session_id = $1`, s.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear extras", err)
	}
	for _, e := range s.Extras() {
		_, err := tx.Exec(ctx, `
			INSERT INTO coworking_extras (id, session_id, product_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), s.ID(), e.ProductID, e.Name, pgconv.DecimalToNumeric(e.UnitPrice), e.Quantity,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr("extra references unknown product", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert extra", err)
		}
	}
	if _, err := tx.Exec(ctx,
		`UPDATE coworking_sessions SET updated_at = now() WHERE id = $1`, s.ID()); err != nil {
		return infra.WrapRepoErr("failed to touch session", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit extras", err)
	}
	return nil
}

// FinishWithOrder persists the terminal state and the billed order in one
// transaction, so a finished session without its sale can never be observed.
// The status guard prevents a concurrent double-finish from rewriting history.
func (r *CoworkingRepository) FinishWithOrder(ctx context.Context, s *coworking.Session, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE coworking_sessions
		SET status = $2, end_time = $3, total = $4, updated_at = now()
		WHERE id = $1 AND status = 'active'`,
		s.ID(), s.Status().String(), s.EndTime(), pgconv.DecimalToNumeric(s.Total()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to finish coworking session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active coworking session not found", nil, infra.KindNotFound)
	}

	if err := insertOrder(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit coworking finish", err)
	}
	return nil
}

func (r *CoworkingRepository) ListByStatus(ctx context.Context, status coworking.Status) ([]*coworking.Session, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+coworkingColumns+` FROM coworking_sessions
		WHERE status = $1 ORDER BY start_time`,
		status.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coworking sessions", err)
	}
	defer rows.Close()

	var (
		sessions []*coworking.Session
		ids      []uuid.UUID
	)
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coworking sessions", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	extras, err := r.loadExtras(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make([]*coworking.Session, len(sessions))
	for i, s := range sessions {
		result[i] = withExtras(s, extras[s.ID()])
	}
	return result, nil
}

func (r *CoworkingRepository) loadExtras(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID][]coworking.Extra, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT session_id, product_id, name, unit_price, quantity
		FROM coworking_extras
		WHERE session_id = ANY($1)
		ORDER BY session_id, id`,
		sessionIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load extras", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]coworking.Extra)
	for rows.Next() {
		var (
			sessionID uuid.UUID
			productID uuid.UUID
			name      string
			unitPrice pgtype.Numeric
			quantity  int32
		)
		if err := rows.Scan(&sessionID, &productID, &name, &unitPrice, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra", err)
		}
		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("stored extra price is invalid", err)
		}
		result[sessionID] = append(result[sessionID], coworking.Extra{
			ProductID: productID,
			Name:      name,
			UnitPrice: price,
			Quantity:  quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras", err)
	}
	return result, nil
}

func (r *CoworkingRepository) scanSession(row pgx.Row) (*coworking.Session, error) {
	var (
		id         uuid.UUID
		clientName string
		startTime  pgtype.Timestamptz
		endTime    pgtype.Timestamptz
		status     string
		total      pgtype.Numeric
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(&id, &clientName, &startTime, &endTime, &status, &total, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coworking session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan coworking session", err)
	}

	tot, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, infra.WrapRepoErr("stored total is invalid", err)
	}

	return coworking.ReconstructSession(
		id, clientName,
		pgconv.TimeFromPgtype(startTime),
		pgconv.TimePtrFromPgtype(endTime),
		coworking.Status(status),
		nil,
		tot,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func withExtras(s *coworking.Session, extras []coworking.Extra) *coworking.Session {
	return coworking.ReconstructSession(
		s.ID(), s.ClientName(), s.StartTime(), s.EndTime(), s.Status(),
		extras, s.Total(), s.CreatedAt(), s.UpdatedAt(),
	)
}
