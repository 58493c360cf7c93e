package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/config"
	"github.com/nurpe/fleetops-api/internal/diff"
	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/repository"
	"github.com/nurpe/fleetops-api/internal/stats"
)

type TripRepo interface {
	List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	Create(ctx context.Context, trip *model.Trip) error
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	InsertAudit(ctx context.Context, entry *model.AuditEntry) error
	ListAudit(ctx context.Context, tripID uuid.UUID) ([]model.AuditEntry, error)
}

type TripService struct {
	repo          TripRepo
	companies     CompanyRepo
	validStatuses map[string]struct{}
}

func NewTripService(repo TripRepo, companies CompanyRepo, cfg *config.Config) *TripService {
	valid := make(map[string]struct{}, len(cfg.Trips.ValidStatuses))
	for _, status := range cfg.Trips.ValidStatuses {
		valid[strings.ToUpper(strings.TrimSpace(status))] = struct{}{}
	}
	return &TripService{repo: repo, companies: companies, validStatuses: valid}
}

type TripInput struct {
	CompanyID    *uuid.UUID
	VehicleID    *uuid.UUID
	DriverID     *uuid.UUID
	CompanyName  string
	ArrivalAt    string
	UnloadStatus string
	Cargo        string
	Notes        string
}

func (s *TripService) List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error) {
	trips, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []model.Trip{}
	}
	return trips, nil
}

func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (s *TripService) Create(ctx context.Context, input TripInput) (*model.Trip, error) {
	trip, err := s.tripFromInput(ctx, uuid.New(), input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Update persists the edited trip and, when any field effectively changed,
// writes an audit entry holding the change list.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, input TripInput, principal model.Principal) (*model.Trip, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trip, err := s.tripFromInput(ctx, id, input)
	if err != nil {
		return nil, err
	}
	trip.CreatedAt = existing.CreatedAt

	changes := diff.Compute(tripDiffRecord(existing), updatedDiffRecord(trip), tripDiffSpecs)

	if err := s.repo.Update(ctx, trip); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(changes) > 0 {
		encoded, err := json.Marshal(changes)
		if err != nil {
			return nil, fmt.Errorf("encode audit changes: %w", err)
		}
		entry := &model.AuditEntry{
			ID:      uuid.New(),
			TripID:  id,
			UserID:  principal.UserID,
			Changes: string(encoded),
		}
		if err := s.repo.InsertAudit(ctx, entry); err != nil {
			return nil, err
		}
	}
	return trip, nil
}

// PreviewChanges computes the before/after change list for the edit modal
// without persisting anything.
func (s *TripService) PreviewChanges(ctx context.Context, id uuid.UUID, input TripInput) ([]diff.Change, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	trip, err := s.tripFromInput(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return diff.Compute(tripDiffRecord(existing), updatedDiffRecord(trip), tripDiffSpecs), nil
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TripService) ListAudit(ctx context.Context, tripID uuid.UUID) ([]model.AuditEntry, error) {
	entries, err := s.repo.ListAudit(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}
	return entries, nil
}

func (s *TripService) tripFromInput(ctx context.Context, id uuid.UUID, input TripInput) (*model.Trip, error) {
	status := strings.ToUpper(strings.TrimSpace(input.UnloadStatus))
	if status == "" {
		status = string(model.TripStatusWaiting)
	}
	if _, ok := s.validStatuses[status]; !ok {
		return nil, fmt.Errorf("%w: unknown unload_status %q", ErrInvalidInput, input.UnloadStatus)
	}

	arrival, err := parseArrival(input.ArrivalAt)
	if err != nil {
		return nil, err
	}

	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" && input.CompanyID != nil {
		company, err := s.companies.GetByID(ctx, *input.CompanyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: company %s", ErrNotFound, input.CompanyID)
			}
			return nil, err
		}
		companyName = company.Name
	}
	if companyName == "" {
		return nil, fmt.Errorf("%w: company_name is required", ErrInvalidInput)
	}

	return &model.Trip{
		ID:           id,
		CompanyID:    input.CompanyID,
		VehicleID:    input.VehicleID,
		DriverID:     input.DriverID,
		CompanyName:  companyName,
		ArrivalAt:    arrival,
		UnloadStatus: status,
		Cargo:        strings.TrimSpace(input.Cargo),
		Notes:        strings.TrimSpace(input.Notes),
	}, nil
}

// tripDiffSpecs drives the change preview and audit trail. Status values are
// compared after normalization so "waiting" → "WAITING" never shows up as an
// edit.
var tripDiffSpecs = []diff.FieldSpec{
	{Label: "company", Key: "company_name"},
	{Label: "arrival_at", Key: "arrival_at"},
	{
		Label: "status",
		OldValue: func(oldRec, _ diff.Record) any {
			return stats.NormalizeStatus(stringValue(oldRec["unload_status"]))
		},
		NewValue: func(_, newRec diff.Record) any {
			return stats.NormalizeStatus(stringValue(newRec["unload_status"]))
		},
	},
	{Label: "vehicle", Key: "vehicle_id"},
	{Label: "driver", Key: "driver_id"},
	diff.Key("cargo"),
	diff.Key("notes"),
}

func tripDiffRecord(trip *model.Trip) diff.Record {
	return diff.Record{
		"company_name":  trip.CompanyName,
		"arrival_at":    formatArrival(trip.ArrivalAt),
		"unload_status": trip.UnloadStatus,
		"vehicle_id":    uuidValue(trip.VehicleID),
		"driver_id":     uuidValue(trip.DriverID),
		"cargo":         trip.Cargo,
		"notes":         trip.Notes,
	}
}

// updatedDiffRecord reuses the same shape for the form side; tripFromInput
// has already normalized the input, so both sides compare like for like.
func updatedDiffRecord(trip *model.Trip) diff.Record {
	return tripDiffRecord(trip)
}

// parseArrival accepts the same layouts the aggregation engine does, so a
// value that passes validation here is never dropped from the charts later.
func parseArrival(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, ok := stats.ParseArrival(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unparseable arrival_at %q", ErrInvalidInput, raw)
	}
	return &parsed, nil
}

func formatArrival(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func uuidValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}
