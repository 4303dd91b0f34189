//go:build unit || e2e

package builder

import (
	"time"

	"caja-api/internal/domain/member"
	reqdto "caja-api/internal/handler/dto/request"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MemberBuilder struct {
	Username     string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	Status       string
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		Username:     "testmember",
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "member",
		Status:       "approved",
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

// Build methods
func (m *MemberBuilder) BuildDomain() (*member.Member, error) {
	username, err := member.NewUsername(m.Username)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(m.Email)
	if err != nil {
		return nil, err
	}
	role, err := member.NewRole(m.Role)
	if err != nil {
		return nil, err
	}
	return member.NewMember(username, email, m.PasswordHash, role), nil
}

func (m *MemberBuilder) BuildReadModel() *readmodel.MemberRM {
	return &readmodel.MemberRM{
		ID:        uuid.New(),
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: time.Now(),
	}
}

func (m *MemberBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: m.Username,
		Email:    m.Email,
		Password: m.Password,
	}
}

func (m *MemberBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: m.Username,
		Password: m.Password,
	}
}

// Fluent builder methods
func (m *MemberBuilder) WithUsername(username string) *MemberBuilder {
	m.Username = username
	return m
}

func (m *MemberBuilder) WithEmail(email string) *MemberBuilder {
	m.Email = email
	return m
}

func (m *MemberBuilder) WithPassword(password string) *MemberBuilder {
	m.Password = password
	return m
}

func (m *MemberBuilder) WithRole(role string) *MemberBuilder {
	m.Role = role
	return m
}

func (m *MemberBuilder) AsAdmin() *MemberBuilder {
	m.Role = "admin"
	return m
}

func (m *MemberBuilder) AsPending() *MemberBuilder {
	m.Status = "pending"
	return m
}
