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

type VehicleRepo interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleService struct {
	repo VehicleRepo
}

func NewVehicleService(repo VehicleRepo) *VehicleService {
	return &VehicleService{repo: repo}
}

type VehicleInput struct {
	CompanyID  *uuid.UUID
	Plate      string
	Model      string
	CapacityM3 *float64
	Active     *bool
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	return vehicles, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Create(ctx context.Context, input VehicleInput) (*model.Vehicle, error) {
	vehicle, err := vehicleFromInput(uuid.New(), input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input VehicleInput) (*model.Vehicle, error) {
	vehicle, err := vehicleFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func vehicleFromInput(id uuid.UUID, input VehicleInput) (*model.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(input.Plate))
	if plate == "" {
		return nil, fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if input.CapacityM3 != nil && *input.CapacityM3 < 0 {
		return nil, fmt.Errorf("%w: capacity_m3 must not be negative", ErrInvalidInput)
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	return &model.Vehicle{
		ID:         id,
		CompanyID:  input.CompanyID,
		Plate:      plate,
		Model:      strings.TrimSpace(input.Model),
		CapacityM3: input.CapacityM3,
		Active:     active,
	}, nil
}
