//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"glowscore/internal/pkg/clock"
	"glowscore/internal/pkg/config"
	"glowscore/internal/pkg/jwt"
	"glowscore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminAuth(t *testing.T) usecase.AdminAuth {
	t.Helper()
	cfg := config.NewTestConfig()
	jwtSvc := jwt.NewService(cfg.Admin.Secret, cfg.Admin.TokenDuration)
	return usecase.NewAdminAuth(cfg.Admin, jwtSvc, clock.NewRealClock())
}

func TestAdminAuthLogin(t *testing.T) {
	auth := newAdminAuth(t)

	t.Run("success: issues a verifiable token", func(t *testing.T) {
		session, err := auth.Login("test-admin-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

		assert.NoError(t, auth.VerifyToken(session.Token))
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		_, err := auth.Login("wrong-secret")
		assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	})

	t.Run("error: empty secret", func(t *testing.T) {
		_, err := auth.Login("")
		assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	})
}

func TestAdminAuthVerifySecret(t *testing.T) {
	auth := newAdminAuth(t)

	assert.True(t, auth.VerifySecret("test-admin-secret"))
	assert.False(t, auth.VerifySecret("test-admin-secret "))
	assert.False(t, auth.VerifySecret(""))
}

func TestAdminAuthVerifyToken(t *testing.T) {
	auth := newAdminAuth(t)

	t.Run("error: garbage token", func(t *testing.T) {
		assert.ErrorIs(t, auth.VerifyToken("not-a-token"), usecase.ErrUnauthorized)
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		otherSvc := jwt.NewService("another-secret", time.Hour)
		token, _, err := otherSvc.GenerateAdminToken(time.Now())
		require.NoError(t, err)

		assert.ErrorIs(t, auth.VerifyToken(token), usecase.ErrUnauthorized)
	})

	t.Run("error: expired token", func(t *testing.T) {
		cfg := config.NewTestConfig()
		jwtSvc := jwt.NewService(cfg.Admin.Secret, time.Minute)
		token, _, err := jwtSvc.GenerateAdminToken(time.Now().Add(-time.Hour))
		require.NoError(t, err)

		assert.ErrorIs(t, auth.VerifyToken(token), usecase.ErrUnauthorized)
	})
}
