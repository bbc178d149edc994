package signup

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name string, age int, email, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
