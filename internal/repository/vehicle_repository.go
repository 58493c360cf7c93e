package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var rows []model.Vehicle
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.company_id,
			c.name AS company_name,
			v.plate,
			v.model,
			v.capacity_m3,
			v.active,
			v.created_at
		FROM vehicles v
		LEFT JOIN companies c ON c.id = v.company_id
		ORDER BY v.plate ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.company_id,
			c.name AS company_name,
			v.plate,
			v.model,
			v.capacity_m3,
			v.active,
			v.created_at
		FROM vehicles v
		LEFT JOIN companies c ON c.id = v.company_id
		WHERE v.id = ?
		LIMIT 1
	`, id).Scan(&vehicle).Error; err != nil {
		return nil, err
	}
	if vehicle.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO vehicles (id, company_id, plate, model, capacity_m3, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, vehicle.ID, vehicle.CompanyID, vehicle.Plate, vehicle.Model, vehicle.CapacityM3, vehicle.Active).Error
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicles
		SET company_id = ?, plate = ?, model = ?, capacity_m3 = ?, active = ?
		WHERE id = ?
	`, vehicle.CompanyID, vehicle.Plate, vehicle.Model, vehicle.CapacityM3, vehicle.Active, vehicle.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
