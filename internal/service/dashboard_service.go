package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/repository"
	"github.com/nurpe/fleetops-api/internal/stats"
)

type TripLister interface {
	List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error)
}

// DashboardService feeds trip rows into the aggregation engine. The clock is
// injected so every view resolves "now" exactly once per request and tests
// can pin it.
type DashboardService struct {
	trips TripLister
	now   func() time.Time
}

func NewDashboardService(trips TripLister, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{trips: trips, now: now}
}

// DashboardSummary bundles all five chart series for the export generators.
type DashboardSummary struct {
	GeneratedAt    time.Time             `json:"generated_at"`
	Companies      []stats.SeriesPoint   `json:"companies"`
	CompaniesMonth []stats.SeriesPoint   `json:"companies_month"`
	StatusToday    []stats.SeriesPoint   `json:"status_today"`
	Daily          []stats.DailyBucket   `json:"daily"`
	Calendar       []stats.CalendarPoint `json:"calendar"`
}

// FieldTrip is one row of the live field-operations board.
type FieldTrip struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"company_name"`
	VehiclePlate string    `json:"vehicle_plate,omitempty"`
	DriverName   string    `json:"driver_name,omitempty"`
	ArrivalAt    string    `json:"arrival_at,omitempty"`
	Status       string    `json:"status"`
	Color        string    `json:"color"`
}

func (s *DashboardService) Companies(ctx context.Context) ([]stats.SeriesPoint, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return stats.CompaniesAllTime(records), nil
}

func (s *DashboardService) CompaniesMonth(ctx context.Context) ([]stats.SeriesPoint, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return stats.CompaniesForMonth(records, s.now()), nil
}

func (s *DashboardService) StatusToday(ctx context.Context) ([]stats.SeriesPoint, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return stats.StatusForDay(records, s.now()), nil
}

func (s *DashboardService) Daily(ctx context.Context) ([]stats.DailyBucket, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return stats.DailyBreakdown(records, s.now()), nil
}

func (s *DashboardService) Calendar(ctx context.Context) ([]stats.CalendarPoint, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Calendar(records), nil
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	ref := s.now()
	return &DashboardSummary{
		GeneratedAt:    ref,
		Companies:      stats.CompaniesAllTime(records),
		CompaniesMonth: stats.CompaniesForMonth(records, ref),
		StatusToday:    stats.StatusForDay(records, ref),
		Daily:          stats.DailyBreakdown(records, ref),
		Calendar:       stats.Calendar(records),
	}, nil
}

// FieldToday lists today's trips for the live-status board, colored like the
// status chart. The day window is resolved in the clock's location.
func (s *DashboardService) FieldToday(ctx context.Context) ([]FieldTrip, error) {
	ref := s.now()
	y, m, d := ref.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	to := from.AddDate(0, 0, 1)

	trips, err := s.trips.List(ctx, repository.TripFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	rows := make([]FieldTrip, 0, len(trips))
	for _, trip := range trips {
		status := stats.NormalizeStatus(trip.UnloadStatus)
		row := FieldTrip{
			ID:          trip.ID,
			CompanyName: trip.CompanyName,
			Status:      status,
			Color:       stats.StatusColor(status),
		}
		if trip.VehiclePlate != nil {
			row.VehiclePlate = *trip.VehiclePlate
		}
		if trip.DriverName != nil {
			row.DriverName = *trip.DriverName
		}
		if trip.ArrivalAt != nil {
			row.ArrivalAt = trip.ArrivalAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *DashboardService) allRecords(ctx context.Context) ([]stats.TripRecord, error) {
	trips, err := s.trips.List(ctx, repository.TripFilter{})
	if err != nil {
		return nil, err
	}
	return statRecords(trips), nil
}

func statRecords(trips []model.Trip) []stats.TripRecord {
	records := make([]stats.TripRecord, 0, len(trips))
	for _, trip := range trips {
		record := stats.TripRecord{
			ID:           trip.ID.String(),
			CompanyName:  trip.CompanyName,
			UnloadStatus: trip.UnloadStatus,
		}
		if trip.ArrivalAt != nil {
			record.ArrivalAt = trip.ArrivalAt.UTC().Format(time.RFC3339)
		}
		records = append(records, record)
	}
	return records
}
