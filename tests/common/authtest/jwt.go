//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"caja-api/internal/domain/member"
	"caja-api/internal/pkg/config"
	"caja-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessDuration)
	require.NoError(t, err)
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	pair, err := service.GenerateTokenPair(memberID, role)
	require.NoError(t, err)
	return pair.AccessToken
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID, role member.Role) string {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	pair, err := service.GenerateTokenPair(memberID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return pair.AccessToken
}
