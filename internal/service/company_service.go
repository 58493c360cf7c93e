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

type CompanyRepo interface {
	List(ctx context.Context) ([]model.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompanyService struct {
	repo CompanyRepo
}

func NewCompanyService(repo CompanyRepo) *CompanyService {
	return &CompanyService{repo: repo}
}

type CompanyInput struct {
	Name    string
	BIN     string
	Phone   string
	Address string
}

func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}
	return companies, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, input CompanyInput) (*model.Company, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	company := &model.Company{
		ID:      uuid.New(),
		Name:    name,
		BIN:     strings.TrimSpace(input.BIN),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, input CompanyInput) (*model.Company, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	company := &model.Company{
		ID:      id,
		Name:    name,
		BIN:     strings.TrimSpace(input.BIN),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}
	if err := s.repo.Update(ctx, company); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
