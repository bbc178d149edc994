package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	usersRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/users"
)

// Service сервис аутентификации и регистрации пользователей
type Service struct {
	userRepo   UserRepository
	txManager  TransactionManager
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, txManager TransactionManager, bcryptCost int, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		txManager:  txManager,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login проверяет пару email/пароль и возвращает пользователя с ролью.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.logger.Info("Login: email=%s", email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d authenticated, role=%s", user.ID, user.Role)
	return user, nil
}

// Signup регистрирует нового пользователя с ролью по умолчанию.
// Проверка уникальности email и вставка выполняются в сериализуемой
// транзакции, гонка двух одинаковых регистраций дает повтор, а не дубль.
func (s *Service) Signup(ctx context.Context, name string, age int, email, password string) (*domain.User, error) {
	s.logger.Info("Signup: email=%s", email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Signup - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         name,
		Age:          age,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.DefaultRole,
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exists, err := s.userRepo.EmailExists(txCtx, email)
		if err != nil {
			return fmt.Errorf("%w: Signup - failed to check email: %v", ErrInternal, err)
		}
		if exists {
			return ErrEmailTaken
		}

		created, err := s.userRepo.Create(txCtx, user)
		if err != nil {
			return fmt.Errorf("%w: Signup - failed to create user: %v", ErrInternal, err)
		}

		if err := s.userRepo.AssignRole(txCtx, created.ID, domain.DefaultRole); err != nil {
			return fmt.Errorf("%w: Signup - failed to assign role: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.logger.Warn("Signup: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Signup: transaction failed for email=%s: %v", email, err)
		return nil, err
	}

	s.logger.Info("Signup: successfully registered user id=%d", user.ID)
	return user, nil
}
