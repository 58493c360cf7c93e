package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusWaiting   TripStatus = "WAITING"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusUnloaded  TripStatus = "UNLOADED"
	TripStatusCanceled  TripStatus = "CANCELED"
)

type Trip struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	VehicleID    *uuid.UUID `json:"vehicle_id,omitempty"`
	DriverID     *uuid.UUID `json:"driver_id,omitempty"`
	CompanyName  string     `json:"company_name"` // denormalized, dashboards group on it without joins
	VehiclePlate *string    `json:"vehicle_plate,omitempty"`
	DriverName   *string    `json:"driver_name,omitempty"`
	ArrivalAt    *time.Time `json:"arrival_at,omitempty"`
	UnloadStatus string     `json:"unload_status"`
	Cargo        string     `json:"cargo,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AuditEntry records the field-level changes applied by one trip update.
// Changes holds the JSON-encoded change list as stored in the jsonb column.
type AuditEntry struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	UserID    uuid.UUID `json:"user_id"`
	Changes   string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON inlines the stored change list instead of the raw string.
func (e AuditEntry) MarshalJSON() ([]byte, error) {
	type alias AuditEntry
	changes := json.RawMessage(e.Changes)
	if len(changes) == 0 {
		changes = json.RawMessage("[]")
	}
	return json.Marshal(struct {
		alias
		Changes json.RawMessage `json:"changes"`
	}{alias(e), changes})
}
