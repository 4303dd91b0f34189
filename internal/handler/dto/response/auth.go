package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MemberResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	TelegramID *string   `json:"telegram_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Member      *MemberResponse `json:"member"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func FromMemberRM(rm *readmodel.MemberRM) *MemberResponse {
	var resp MemberResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromMemberRMs(rms []*readmodel.MemberRM) []*MemberResponse {
	result := make([]*MemberResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromMemberRM(rm)
	}
	return result
}
