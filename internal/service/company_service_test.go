package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/service"
)

type fakeCompanyRepo struct {
	mockCompanyRepo
	created *model.Company
	updated *model.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *model.Company) error {
	f.created = company
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *model.Company) error {
	f.updated = company
	return nil
}

func TestCompanyService_Create_TrimsFields(t *testing.T) {
	repo := &fakeCompanyRepo{}
	svc := service.NewCompanyService(repo)

	got, err := svc.Create(context.Background(), service.CompanyInput{
		Name:  "  Alpha Logistics  ",
		Phone: " +7 701 000 00 00 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpha Logistics", got.Name)
	assert.Equal(t, "+7 701 000 00 00", got.Phone)
	assert.NotEqual(t, uuid.Nil, got.ID)
	require.NotNil(t, repo.created)
}

func TestCompanyService_Create_MissingName(t *testing.T) {
	svc := service.NewCompanyService(&fakeCompanyRepo{})

	_, err := svc.Create(context.Background(), service.CompanyInput{Name: "   "})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	repo := &mockCompanyRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*model.Company, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := service.NewCompanyService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCompanyService_List_EmptyNotNil(t *testing.T) {
	svc := service.NewCompanyService(&fakeCompanyRepo{})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
