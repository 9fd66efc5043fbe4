//go:build e2e

package helper

import (
	"testing"
	"time"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper issues tokens the way the account service does, signed with the test secret.
type JWTTestHelper struct {
	service *jwt.Service
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, "customer", time.Hour)
	require.NoError(t, err)
	return token
}

// NewUser returns a fresh user id together with a valid token for it.
func (h *JWTTestHelper) NewUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	return userID, h.GenerateToken(t, userID)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, "customer", -time.Minute)
	require.NoError(t, err)
	return token
}
