package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
)

type DriverRepo interface {
	List(ctx context.Context) ([]model.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	Create(ctx context.Context, driver *model.Driver) error
	Update(ctx context.Context, driver *model.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DriverService struct {
	repo DriverRepo
}

func NewDriverService(repo DriverRepo) *DriverService {
	return &DriverService{repo: repo}
}

type DriverInput struct {
	CompanyID *uuid.UUID
	FullName  string
	Phone     string
	LicenseNo string
	Active    *bool
}

func (s *DriverService) List(ctx context.Context) ([]model.Driver, error) {
	drivers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if drivers == nil {
		drivers = []model.Driver{}
	}
	return drivers, nil
}

func (s *DriverService) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Create(ctx context.Context, input DriverInput) (*model.Driver, error) {
	driver, err := driverFromInput(uuid.New(), input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, input DriverInput) (*model.Driver, error) {
	driver, err := driverFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, driver); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func driverFromInput(id uuid.UUID, input DriverInput) (*model.Driver, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	return &model.Driver{
		ID:        id,
		CompanyID: input.CompanyID,
		FullName:  fullName,
		Phone:     strings.TrimSpace(input.Phone),
		LicenseNo: strings.TrimSpace(input.LicenseNo),
		Active:    active,
	}, nil
}
