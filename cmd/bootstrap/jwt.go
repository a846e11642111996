package bootstrap

import (
	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Admin.Secret, cfg.Admin.SessionDuration)
}
