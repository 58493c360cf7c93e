package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		bin VARCHAR(32),
		phone VARCHAR(32),
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID REFERENCES companies(id),
		full_name VARCHAR(255) NOT NULL,
		phone VARCHAR(32),
		license_no VARCHAR(64),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID REFERENCES companies(id),
		plate VARCHAR(32) NOT NULL,
		model VARCHAR(128),
		capacity_m3 NUMERIC(10,2),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		company_id UUID REFERENCES companies(id),
		vehicle_id UUID REFERENCES vehicles(id),
		driver_id UUID REFERENCES drivers(id),
		company_name VARCHAR(255) NOT NULL DEFAULT '',
		arrival_at TIMESTAMPTZ,
		unload_status VARCHAR(32) NOT NULL DEFAULT 'WAITING',
		cargo TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS trip_audit (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		user_id UUID NOT NULL,
		changes JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicles_plate ON vehicles (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_company_id ON drivers (company_id) WHERE company_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_company_id ON vehicles (company_id) WHERE company_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_trips_company_id ON trips (company_id) WHERE company_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_trips_arrival_at ON trips (arrival_at);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_unload_status ON trips (unload_status);`,
	`CREATE INDEX IF NOT EXISTS idx_trip_audit_trip_id ON trip_audit (trip_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
