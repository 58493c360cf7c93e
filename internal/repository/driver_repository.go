package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	var rows []model.Driver
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.company_id,
			c.name AS company_name,
			d.full_name,
			d.phone,
			d.license_no,
			d.active,
			d.created_at
		FROM drivers d
		LEFT JOIN companies c ON c.id = d.company_id
		ORDER BY d.full_name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.company_id,
			c.name AS company_name,
			d.full_name,
			d.phone,
			d.license_no,
			d.active,
			d.created_at
		FROM drivers d
		LEFT JOIN companies c ON c.id = d.company_id
		WHERE d.id = ?
		LIMIT 1
	`, id).Scan(&driver).Error; err != nil {
		return nil, err
	}
	if driver.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO drivers (id, company_id, full_name, phone, license_no, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, driver.ID, driver.CompanyID, driver.FullName, driver.Phone, driver.LicenseNo, driver.Active).Error
}

func (r *DriverRepository) Update(ctx context.Context, driver *model.Driver) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE drivers
		SET company_id = ?, full_name = ?, phone = ?, license_no = ?, active = ?
		WHERE id = ?
	`, driver.CompanyID, driver.FullName, driver.Phone, driver.LicenseNo, driver.Active, driver.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
