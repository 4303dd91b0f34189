package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MemberRM struct {
	ID         uuid.UUID
	Username   string
	Email      string
	Role       string
	Status     string
	TelegramID *string
	CreatedAt  time.Time
}
