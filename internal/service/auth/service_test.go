package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	usersRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/users"
)

type fakeUserRepo struct {
	byEmail     *domain.User
	byEmailErr  error
	emailExists bool
	created     *domain.User
	roleUserID  int64
	role        string
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, _ string) (bool, error) {
	return f.emailExists, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	user.ID = 10
	f.created = user
	return user, nil
}

func (f *fakeUserRepo) AssignRole(_ context.Context, userID int64, role string) error {
	f.roleUserID = userID
	f.role = role
	return nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{
		byEmail: &domain.User{
			ID:           1,
			Name:         "Ann",
			Email:        "ann@example.com",
			PasswordHash: string(hash),
			Role:         domain.RoleDispatcher,
		},
	}
	svc := NewService(repo, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	user, err := svc.Login(context.Background(), "ann@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, domain.RoleDispatcher, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{
		byEmail: &domain.User{ID: 1, Email: "ann@example.com", PasswordHash: string(hash)},
	}
	svc := NewService(repo, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	_, err = svc.Login(context.Background(), "ann@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmailErr: usersRepo.ErrUserNotFound}
	svc := NewService(repo, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	// Неизвестный email неотличим от неверного пароля
	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	txMgr := &fakeTxManager{}
	svc := NewService(repo, txMgr, bcrypt.MinCost, nopLogger{})

	user, err := svc.Signup(context.Background(), "Bob", 30, "bob@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, int64(10), user.ID)
	assert.Equal(t, domain.DefaultRole, user.Role)
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, int64(10), repo.roleUserID)
	assert.Equal(t, domain.DefaultRole, repo.role)

	// Пароль хранится только в виде bcrypt-хеша
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret123")))
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := &fakeUserRepo{emailExists: true}
	svc := NewService(repo, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	_, err := svc.Signup(context.Background(), "Bob", 30, "bob@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, repo.created)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, &fakeTxManager{}, bcrypt.MinCost, nopLogger{})

	_, err := svc.Signup(context.Background(), "", 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
