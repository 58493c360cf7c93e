package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	var rows []model.Company
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, bin, phone, address, created_at
		FROM companies
		ORDER BY name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, bin, phone, address, created_at
		FROM companies
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&company).Error; err != nil {
		return nil, err
	}
	if company.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO companies (id, name, bin, phone, address)
		VALUES (?, ?, ?, ?, ?)
	`, company.ID, company.Name, company.BIN, company.Phone, company.Address).Error
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE companies
		SET name = ?, bin = ?, phone = ?, address = ?
		WHERE id = ?
	`, company.Name, company.BIN, company.Phone, company.Address, company.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM companies WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
