package member

import (
	"time"

	"github.com/google/uuid"
)

// Member is a household/staff account. Registration currently auto-approves;
// the pending status survives for rows created before that change.
type Member struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	role         Role
	status       Status
	telegramID   *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(username Username, email Email, passwordHash string, role Role) *Member {
	return &Member{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusApproved,
	}
}

func ReconstructMember(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	role Role,
	status Status,
	telegramID *string,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		telegramID:   telegramID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) IsApproved() bool {
	return m.status == StatusApproved
}

func (m *Member) ID() uuid.UUID        { return m.id }
func (m *Member) Username() Username   { return m.username }
func (m *Member) Email() Email         { return m.email }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) Role() Role           { return m.role }
func (m *Member) Status() Status       { return m.status }
func (m *Member) TelegramID() *string  { return m.telegramID }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }
