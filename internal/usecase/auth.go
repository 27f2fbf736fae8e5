package usecase

import (
	"crypto/subtle"
	"time"

	"glowscore/internal/pkg/clock"
	"glowscore/internal/pkg/config"
	"glowscore/internal/pkg/errs"
	"glowscore/internal/pkg/jwt"
)

var ErrUnauthorized = errs.New("unauthorized")

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// AdminAuth gates the code-management dashboard behind a single shared
// secret. A successful login trades the secret for a short-lived token so
// the dashboard does not have to hold the secret in memory.
type AdminAuth interface {
	Login(secret string) (*AdminSession, error)
	VerifySecret(secret string) bool
	VerifyToken(token string) error
}

type adminAuthImpl struct {
	secret []byte
	jwtSvc *jwt.Service
	clock  clock.Clock
}

func NewAdminAuth(cfg config.AdminConfig, jwtSvc *jwt.Service, clock clock.Clock) AdminAuth {
	return &adminAuthImpl{
		secret: []byte(cfg.Secret),
		jwtSvc: jwtSvc,
		clock:  clock,
	}
}

func (a *adminAuthImpl) Login(secret string) (*AdminSession, error) {
	if !a.VerifySecret(secret) {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := a.jwtSvc.GenerateAdminToken(a.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate admin token")
	}
	return &AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *adminAuthImpl) VerifySecret(secret string) bool {
	return subtle.ConstantTimeCompare(a.secret, []byte(secret)) == 1
}

func (a *adminAuthImpl) VerifyToken(token string) error {
	if err := a.jwtSvc.ValidateAdminToken(token); err != nil {
		return errs.Mark(err, ErrUnauthorized)
	}
	return nil
}
