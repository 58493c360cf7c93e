package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/model"
)

// TripFilter narrows List queries. Zero values mean "no restriction".
type TripFilter struct {
	CompanyID *uuid.UUID
	Status    string
	From      *time.Time
	To        *time.Time // exclusive
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `
	tr.id,
	tr.company_id,
	tr.vehicle_id,
	tr.driver_id,
	tr.company_name,
	v.plate AS vehicle_plate,
	d.full_name AS driver_name,
	tr.arrival_at,
	tr.unload_status,
	tr.cargo,
	tr.notes,
	tr.created_at,
	tr.updated_at
`

func (r *TripRepository) List(ctx context.Context, filter TripFilter) ([]model.Trip, error) {
	baseQuery := `
		SELECT ` + tripColumns + `
		FROM trips tr
		LEFT JOIN vehicles v ON v.id = tr.vehicle_id
		LEFT JOIN drivers d ON d.id = tr.driver_id
		WHERE 1 = 1
	`
	args := []interface{}{}
	if filter.CompanyID != nil {
		baseQuery += " AND tr.company_id = ?"
		args = append(args, *filter.CompanyID)
	}
	if filter.Status != "" {
		baseQuery += " AND tr.unload_status = ?"
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		baseQuery += " AND tr.arrival_at >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		baseQuery += " AND tr.arrival_at < ?"
		args = append(args, *filter.To)
	}
	baseQuery += " ORDER BY tr.arrival_at DESC NULLS LAST, tr.created_at DESC"

	var rows []model.Trip
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+tripColumns+`
		FROM trips tr
		LEFT JOIN vehicles v ON v.id = tr.vehicle_id
		LEFT JOIN drivers d ON d.id = tr.driver_id
		WHERE tr.id = ?
		LIMIT 1
	`, id).Scan(&trip).Error; err != nil {
		return nil, err
	}
	if trip.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO trips (id, company_id, vehicle_id, driver_id, company_name, arrival_at, unload_status, cargo, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trip.ID, trip.CompanyID, trip.VehicleID, trip.DriverID, trip.CompanyName,
		trip.ArrivalAt, trip.UnloadStatus, trip.Cargo, trip.Notes).Error
}

func (r *TripRepository) Update(ctx context.Context, trip *model.Trip) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE trips
		SET company_id = ?, vehicle_id = ?, driver_id = ?, company_name = ?,
			arrival_at = ?, unload_status = ?, cargo = ?, notes = ?, updated_at = NOW()
		WHERE id = ?
	`, trip.CompanyID, trip.VehicleID, trip.DriverID, trip.CompanyName,
		trip.ArrivalAt, trip.UnloadStatus, trip.Cargo, trip.Notes, trip.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM trips WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TripRepository) InsertAudit(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO trip_audit (id, trip_id, user_id, changes)
		VALUES (?, ?, ?, ?::jsonb)
	`, entry.ID, entry.TripID, entry.UserID, entry.Changes).Error
}

func (r *TripRepository) ListAudit(ctx context.Context, tripID uuid.UUID) ([]model.AuditEntry, error) {
	var rows []model.AuditEntry
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, trip_id, user_id, changes::text AS changes, created_at
		FROM trip_audit
		WHERE trip_id = ?
		ORDER BY created_at DESC
	`, tripID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
