package model

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName *string    `json:"company_name,omitempty"`
	Plate       string     `json:"plate"`
	Model       string     `json:"model,omitempty"`
	CapacityM3  *float64   `json:"capacity_m3,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}
