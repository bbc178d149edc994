package login

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	TTL() time.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
