package bootstrap

import (
	"glowscore/internal/pkg/config"
	"glowscore/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// The dashboard shared secret doubles as the token signing key; there is a
// single admin principal and no key rotation requirement.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.Secret, cfg.Admin.TokenDuration)
}
