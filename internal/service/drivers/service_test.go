package drivers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	driversRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/drivers"
	"github.com/m04kA/SMC-FleetService/pkg/ptr"
)

type fakeDriverRepo struct {
	drivers   []*domain.Driver
	listErr   error
	created   *domain.Driver
	updateErr error

	updatedID      int64
	updatedName    *string
	updatedLicense *string
	updatedAvail   *bool

	deletedID int64
}

func (f *fakeDriverRepo) List(_ context.Context) ([]*domain.Driver, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.drivers, nil
}

func (f *fakeDriverRepo) Create(_ context.Context, driver *domain.Driver) (*domain.Driver, error) {
	driver.ID = 7
	f.created = driver
	return driver, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, id int64, name *string, licenseNumber *string, available *bool) (*domain.Driver, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedID = id
	f.updatedName = name
	f.updatedLicense = licenseNumber
	f.updatedAvail = available
	return &domain.Driver{ID: id, Name: "Ivan", LicenseNumber: "AB1234", Available: true}, nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &fakeDriverRepo{}
	svc := NewService(repo, nopLogger{})

	driver, err := svc.Create(context.Background(), "Ivan", "AB1234", true)
	require.NoError(t, err)

	assert.Equal(t, int64(7), driver.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "AB1234", repo.created.LicenseNumber)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewService(&fakeDriverRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), "", "AB1234", true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "Ivan", "", true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeDriverRepo{}
	svc := NewService(repo, nopLogger{})

	// Меняем только доступность, имя и лицензию не трогаем
	_, err := svc.Update(context.Background(), 7, nil, nil, ptr.Ptr(false))
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.updatedID)
	assert.Nil(t, repo.updatedName)
	assert.Nil(t, repo.updatedLicense)
	require.NotNil(t, repo.updatedAvail)
	assert.False(t, *repo.updatedAvail)
}

func TestUpdate_AllFields(t *testing.T) {
	repo := &fakeDriverRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 7, ptr.Ptr("Petr"), ptr.Ptr("CD5678"), ptr.Ptr(true))
	require.NoError(t, err)

	require.NotNil(t, repo.updatedName)
	assert.Equal(t, "Petr", *repo.updatedName)
	require.NotNil(t, repo.updatedLicense)
	assert.Equal(t, "CD5678", *repo.updatedLicense)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeDriverRepo{updateErr: driversRepo.ErrDriverNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 99, ptr.Ptr("Petr"), nil, nil)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestUpdate_InvalidID(t *testing.T) {
	svc := NewService(&fakeDriverRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 0, ptr.Ptr("Petr"), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeDriverRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deletedID)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &fakeDriverRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
