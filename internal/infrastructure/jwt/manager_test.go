package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pregen/shop-api/internal/domain/entity"
	"github.com/pregen/shop-api/internal/usecase"
)

func newTestManager(at *time.Time) *JWTManager {
	m := NewJWTManager("test-secret", 0)
	m.now = func() time.Time { return *at }
	return m
}

func TestJWTManager_Roundtrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(&now)

	token, err := m.GenerateAccessToken("user-1", "ADMIN", "alice", "a@x.com")
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, now.Add(DefaultAccessTokenTTL).Equal(claims.ExpiresAt.Time))
}

func TestJWTManager_ExpiryWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(&now)
	issuedAt := now

	token, err := m.GenerateAccessToken("user-1", "STUDENT", "alice", "a@x.com")
	require.NoError(t, err)

	now = issuedAt.Add(time.Minute)
	_, err = m.VerifyToken(token)
	require.NoError(t, err)

	now = issuedAt.Add(DefaultAccessTokenTTL + time.Minute)
	_, err = m.VerifyToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_TamperedSignature(t *testing.T) {
	now := time.Now()
	m := newTestManager(&now)

	token, err := m.GenerateAccessToken("user-1", "STUDENT", "alice", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.VerifyToken(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	now := time.Now()
	m := newTestManager(&now)
	other := NewJWTManager("another-secret", 0)

	token, err := other.GenerateAccessToken("user-1", "STUDENT", "alice", "a@x.com")
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Garbage(t *testing.T) {
	now := time.Now()
	m := newTestManager(&now)

	_, err := m.VerifyToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceAdapter_MapsErrors(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(&now)
	svc := NewJWTService(m)

	token, err := svc.GenerateAccessToken(&entity.User{ID: "u1", Role: entity.UserRoleTeacher, Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleTeacher, claims.Role)

	now = now.Add(DefaultAccessTokenTTL + time.Second)
	_, err = svc.ParseAccessToken(token)
	require.ErrorIs(t, err, usecase.ErrTokenExpired)

	_, err = svc.ParseAccessToken(token + "x")
	require.ErrorIs(t, err, usecase.ErrTokenInvalid)
}
