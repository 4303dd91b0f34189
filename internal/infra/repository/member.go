package repository

import (
	"context"

	"caja-api/internal/domain/member"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

type memberRow struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	TelegramID   pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const memberColumns = `id, username, email, password_hash, role, status, telegram_id, created_at, updated_at`

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO members (id, username, email, password_hash, role, status, telegram_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID(), m.Username().Value(), m.Email().Value(), m.PasswordHash(),
		m.Role().String(), m.Status().String(), m.TelegramID(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("member already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create member", err)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	return r.scanMember(row)
}

func (r *MemberRepository) FindByUsername(ctx context.Context, username string) (*member.Member, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE lower(username) = lower($1)`, username)
	return r.scanMember(row)
}

func (r *MemberRepository) List(ctx context.Context) ([]*member.Member, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	defer rows.Close()

	var result []*member.Member
	for rows.Next() {
		m, err := r.scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate members", err)
	}
	return result, nil
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status member.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update member status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("member has recorded transactions", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MemberRepository) scanMember(row pgx.Row) (*member.Member, error) {
	var mr memberRow
	err := row.Scan(&mr.ID, &mr.Username, &mr.Email, &mr.PasswordHash, &mr.Role,
		&mr.Status, &mr.TelegramID, &mr.CreatedAt, &mr.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan member", err)
	}
	return rowToMember(mr)
}

// Rows already passed domain validation on the way in, so reconstruction only
// rebuilds value objects.
func rowToMember(mr memberRow) (*member.Member, error) {
	username, err := member.NewUsername(mr.Username)
	if err != nil {
		return nil, infra.WrapRepoErr("stored username is invalid", err)
	}
	email, err := member.NewEmail(mr.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return member.ReconstructMember(
		mr.ID,
		username,
		email,
		mr.PasswordHash,
		member.Role(mr.Role),
		member.Status(mr.Status),
		pgconv.StringPtrFromPgtype(mr.TelegramID),
		pgconv.TimeFromPgtype(mr.CreatedAt),
		pgconv.TimeFromPgtype(mr.UpdatedAt),
	), nil
}
