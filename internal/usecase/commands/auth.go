package commands

import (
	"context"
	"crypto/subtle"

	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/pkg/errs"
	"tipi-reserve/internal/pkg/jwt"
)

var ErrInvalidPIN = errs.New("invalid admin pin")

type AuthCommands interface {
	Login(ctx context.Context, pin string) (string, error)
}

type authUseCaseImpl struct {
	jwtService *jwt.Service
	admin      config.AdminConfig
}

func NewAuthUseCase(jwtService *jwt.Service, admin config.AdminConfig) AuthCommands {
	return &authUseCaseImpl{jwtService: jwtService, admin: admin}
}

func (u *authUseCaseImpl) Login(_ context.Context, pin string) (string, error) {
	if u.admin.PIN == "" {
		return "", ErrInvalidPIN
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(u.admin.PIN)) != 1 {
		return "", ErrInvalidPIN
	}

	token, err := u.jwtService.GenerateAdminToken()
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return token, nil
}
