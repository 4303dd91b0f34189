package usecase

import (
	"context"
	"errors"

	"caja-api/internal/domain/member"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/pkg/jwt"
	"caja-api/internal/pkg/password"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberPending      = errors.New("member pending approval")
	ErrDuplicateMember    = errors.New("username or email already in use")
)

type MemberRepository interface {
	Create(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error)
	FindByUsername(ctx context.Context, username string) (*member.Member, error)
	List(ctx context.Context) ([]*member.Member, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status member.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*readmodel.MemberRM, error)
	Login(ctx context.Context, username, plainPassword string) (*jwt.TokenPair, *readmodel.MemberRM, error)
	Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	GetCurrentMember(ctx context.Context, id uuid.UUID) (*readmodel.MemberRM, error)
	ListMembers(ctx context.Context) ([]*readmodel.MemberRM, error)
	ApproveMember(ctx context.Context, id uuid.UUID) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

type authUseCaseImpl struct {
	members MemberRepository
	tokens  *jwt.Service
}

func NewAuthUseCase(members MemberRepository, tokens *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		members: members,
		tokens:  tokens,
	}
}

func (u *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.MemberRM, error) {
	username, err := member.NewUsername(params.Username)
	if err != nil {
		return nil, err
	}
	email, err := member.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	pass, err := member.NewPassword(params.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	m := member.NewMember(username, email, hash, member.RoleMember)
	if err := u.members.Create(ctx, m); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateMember)
		}
		return nil, errs.Wrap(err, "failed to create member")
	}

	return toMemberRM(m), nil
}

func (u *authUseCaseImpl) Login(ctx context.Context, username, plainPassword string) (*jwt.TokenPair, *readmodel.MemberRM, error) {
	m, err := u.members.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, nil, errs.Wrap(err, "failed to find member")
	}

	if err := password.Compare(m.PasswordHash(), plainPassword); err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !m.IsApproved() {
		return nil, nil, ErrMemberPending
	}

	pair, err := u.tokens.GenerateTokenPair(m.ID(), m.Role())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to generate tokens")
	}
	return pair, toMemberRM(m), nil
}

func (u *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	// Re-read the member so a deleted or demoted account cannot refresh.
	m, err := u.members.FindByID(ctx, claims.MemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to find member")
	}
	if !m.IsApproved() {
		return nil, ErrMemberPending
	}

	pair, err := u.tokens.GenerateTokenPair(m.ID(), m.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate tokens")
	}
	return pair, nil
}

func (u *authUseCaseImpl) GetCurrentMember(ctx context.Context, id uuid.UUID) (*readmodel.MemberRM, error) {
	m, err := u.members.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMemberNotFound)
		}
		return nil, errs.Wrap(err, "failed to find member")
	}
	return toMemberRM(m), nil
}

func (u *authUseCaseImpl) ListMembers(ctx context.Context) ([]*readmodel.MemberRM, error) {
	members, err := u.members.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list members")
	}

	result := make([]*readmodel.MemberRM, len(members))
	for i, m := range members {
		result[i] = toMemberRM(m)
	}
	return result, nil
}

func (u *authUseCaseImpl) ApproveMember(ctx context.Context, id uuid.UUID) error {
	if err := u.members.UpdateStatus(ctx, id, member.StatusApproved); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrMemberNotFound)
		}
		return errs.Wrap(err, "failed to approve member")
	}
	return nil
}

func (u *authUseCaseImpl) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if err := u.members.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrMemberNotFound)
		}
		return errs.Wrap(err, "failed to delete member")
	}
	return nil
}

func toMemberRM(m *member.Member) *readmodel.MemberRM {
	return &readmodel.MemberRM{
		ID:         m.ID(),
		Username:   m.Username().Value(),
		Email:      m.Email().Value(),
		Role:       m.Role().String(),
		Status:     m.Status().String(),
		TelegramID: m.TelegramID(),
		CreatedAt:  m.CreatedAt(),
	}
}
