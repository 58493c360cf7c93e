package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleDriver  Role = "DRIVER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID    uuid.UUID
	CompanyID *uuid.UUID
	Role      Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }
func (p Principal) IsDriver() bool  { return p.Role == RoleDriver }

// CanWrite reports whether the principal may mutate fleet data. Drivers get
// read-only views.
func (p Principal) CanWrite() bool { return p.IsAdmin() || p.IsManager() }
