package model

import (
	"time"

	"github.com/google/uuid"
)

type Driver struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName *string    `json:"company_name,omitempty"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone,omitempty"`
	LicenseNo   string     `json:"license_no,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}
