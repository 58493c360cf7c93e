package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/fleetops-api/internal/config"
	"github.com/nurpe/fleetops-api/internal/diff"
	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/repository"
	"github.com/nurpe/fleetops-api/internal/service"
	"github.com/nurpe/fleetops-api/internal/stats"
)

// mockTripRepo is a hand-written double for service.TripRepo; set only the
// function fields a test needs.
type mockTripRepo struct {
	list        func(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error)
	getByID     func(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	create      func(ctx context.Context, trip *model.Trip) error
	update      func(ctx context.Context, trip *model.Trip) error
	deleteTrip  func(ctx context.Context, id uuid.UUID) error
	insertAudit func(ctx context.Context, entry *model.AuditEntry) error
	listAudit   func(ctx context.Context, tripID uuid.UUID) ([]model.AuditEntry, error)
}

func (m *mockTripRepo) List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error) {
	return m.list(ctx, filter)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Create(ctx context.Context, trip *model.Trip) error {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) Update(ctx context.Context, trip *model.Trip) error {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteTrip(ctx, id)
}
func (m *mockTripRepo) InsertAudit(ctx context.Context, entry *model.AuditEntry) error {
	return m.insertAudit(ctx, entry)
}
func (m *mockTripRepo) ListAudit(ctx context.Context, tripID uuid.UUID) ([]model.AuditEntry, error) {
	return m.listAudit(ctx, tripID)
}

var _ service.TripRepo = (*mockTripRepo)(nil)

type mockCompanyRepo struct {
	getByID func(ctx context.Context, id uuid.UUID) (*model.Company, error)
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]model.Company, error) { return nil, nil }
func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return m.getByID(ctx, id)
}
func (m *mockCompanyRepo) Create(ctx context.Context, company *model.Company) error { return nil }
func (m *mockCompanyRepo) Update(ctx context.Context, company *model.Company) error { return nil }
func (m *mockCompanyRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

var _ service.CompanyRepo = (*mockCompanyRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{
		Trips: config.TripsConfig{
			ValidStatuses: []string{"WAITING", "COMPLETED", "UNLOADED", "CANCELED"},
		},
	}
}

func newTripService(repo *mockTripRepo) *service.TripService {
	return service.NewTripService(repo, &mockCompanyRepo{}, testConfig())
}

func storedTrip(id uuid.UUID) *model.Trip {
	arrival := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	return &model.Trip{
		ID:           id,
		CompanyName:  "Alpha Logistics",
		ArrivalAt:    &arrival,
		UnloadStatus: "WAITING",
		Cargo:        "gravel",
	}
}

func manager() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleManager}
}

func TestTripService_Create_NormalizesStatus(t *testing.T) {
	var created *model.Trip
	repo := &mockTripRepo{
		create: func(_ context.Context, trip *model.Trip) error {
			created = trip
			return nil
		},
	}
	svc := newTripService(repo)

	got, err := svc.Create(context.Background(), service.TripInput{
		CompanyName:  "Alpha Logistics",
		ArrivalAt:    "2024-02-15T10:00:00Z",
		UnloadStatus: "waiting",
	})

	require.NoError(t, err)
	assert.Equal(t, "WAITING", got.UnloadStatus)
	require.NotNil(t, created)
	require.NotNil(t, created.ArrivalAt)
	assert.Equal(t, 2024, created.ArrivalAt.Year())
}

func TestTripService_Create_DefaultsStatusToWaiting(t *testing.T) {
	repo := &mockTripRepo{
		create: func(_ context.Context, _ *model.Trip) error { return nil },
	}
	svc := newTripService(repo)

	got, err := svc.Create(context.Background(), service.TripInput{CompanyName: "Alpha"})

	require.NoError(t, err)
	assert.Equal(t, "WAITING", got.UnloadStatus)
}

func TestTripService_Create_UnknownStatus(t *testing.T) {
	svc := newTripService(&mockTripRepo{})

	_, err := svc.Create(context.Background(), service.TripInput{
		CompanyName:  "Alpha",
		UnloadStatus: "TELEPORTED",
	})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTripService_Create_UnparseableArrival(t *testing.T) {
	svc := newTripService(&mockTripRepo{})

	_, err := svc.Create(context.Background(), service.TripInput{
		CompanyName: "Alpha",
		ArrivalAt:   "soon",
	})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTripService_Create_AcceptsEveryChartLayout(t *testing.T) {
	// Input validation and the aggregation engine share one parser: any
	// arrival accepted here must also land in the date-bucketed charts.
	repo := &mockTripRepo{
		create: func(_ context.Context, _ *model.Trip) error { return nil },
	}
	svc := newTripService(repo)

	for _, arrival := range []string{
		"2024-02-15T10:00:00+05:00",
		"2024-02-15T10:00:00",
		"2024-02-15 10:00:00",
		"2024-02-15",
	} {
		got, err := svc.Create(context.Background(), service.TripInput{
			CompanyName: "Alpha",
			ArrivalAt:   arrival,
		})

		require.NoError(t, err, arrival)
		require.NotNil(t, got.ArrivalAt, arrival)
		_, ok := stats.ParseArrival(arrival)
		assert.True(t, ok, arrival)
	}
}

func TestTripService_Create_MissingCompany(t *testing.T) {
	svc := newTripService(&mockTripRepo{})

	_, err := svc.Create(context.Background(), service.TripInput{UnloadStatus: "WAITING"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTripService_Create_ResolvesCompanyNameFromID(t *testing.T) {
	companyID := uuid.New()
	companies := &mockCompanyRepo{
		getByID: func(_ context.Context, id uuid.UUID) (*model.Company, error) {
			require.Equal(t, companyID, id)
			return &model.Company{ID: id, Name: "Beta Cargo"}, nil
		},
	}
	repo := &mockTripRepo{
		create: func(_ context.Context, _ *model.Trip) error { return nil },
	}
	svc := service.NewTripService(repo, companies, testConfig())

	got, err := svc.Create(context.Background(), service.TripInput{CompanyID: &companyID})

	require.NoError(t, err)
	assert.Equal(t, "Beta Cargo", got.CompanyName)
}

func TestTripService_Update_WritesAuditOnChange(t *testing.T) {
	tripID := uuid.New()
	var audit *model.AuditEntry
	repo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*model.Trip, error) {
			return storedTrip(tripID), nil
		},
		update: func(_ context.Context, _ *model.Trip) error { return nil },
		insertAudit: func(_ context.Context, entry *model.AuditEntry) error {
			audit = entry
			return nil
		},
	}
	svc := newTripService(repo)

	_, err := svc.Update(context.Background(), tripID, service.TripInput{
		CompanyName:  "Alpha Logistics",
		ArrivalAt:    "2024-02-15T10:00:00Z",
		UnloadStatus: "COMPLETED",
		Cargo:        "gravel",
	}, manager())

	require.NoError(t, err)
	require.NotNil(t, audit, "status change should produce an audit entry")

	var changes []diff.Change
	require.NoError(t, json.Unmarshal([]byte(audit.Changes), &changes))
	require.Len(t, changes, 1)
	assert.Equal(t, "status", changes[0].Key)
	assert.Equal(t, "WAITING", changes[0].OldValue)
	assert.Equal(t, "COMPLETED", changes[0].NewValue)
}

func TestTripService_Update_NoAuditWhenUnchanged(t *testing.T) {
	tripID := uuid.New()
	repo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*model.Trip, error) {
			return storedTrip(tripID), nil
		},
		update: func(_ context.Context, _ *model.Trip) error { return nil },
		insertAudit: func(_ context.Context, _ *model.AuditEntry) error {
			t.Fatal("no audit entry expected for an unchanged trip")
			return nil
		},
	}
	svc := newTripService(repo)

	// Same values, different casing on status: normalized before diffing.
	_, err := svc.Update(context.Background(), tripID, service.TripInput{
		CompanyName:  "Alpha Logistics",
		ArrivalAt:    "2024-02-15T10:00:00Z",
		UnloadStatus: "waiting",
		Cargo:        "gravel",
	}, manager())

	require.NoError(t, err)
}

func TestTripService_Update_NotFound(t *testing.T) {
	repo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*model.Trip, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTripService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), service.TripInput{
		CompanyName: "Alpha",
	}, manager())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTripService_PreviewChanges_DoesNotPersist(t *testing.T) {
	tripID := uuid.New()
	repo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*model.Trip, error) {
			return storedTrip(tripID), nil
		},
		update: func(_ context.Context, _ *model.Trip) error {
			t.Fatal("preview must not update")
			return nil
		},
	}
	svc := newTripService(repo)

	changes, err := svc.PreviewChanges(context.Background(), tripID, service.TripInput{
		CompanyName:  "Gamma Freight",
		ArrivalAt:    "2024-02-15T10:00:00Z",
		UnloadStatus: "WAITING",
		Cargo:        "gravel",
	})

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "company", changes[0].Key)
	assert.Equal(t, "Alpha Logistics", changes[0].OldValue)
	assert.Equal(t, "Gamma Freight", changes[0].NewValue)
}

func TestTripService_List_EmptyNotNil(t *testing.T) {
	repo := &mockTripRepo{
		list: func(_ context.Context, _ repository.TripFilter) ([]model.Trip, error) {
			return nil, nil
		},
	}
	svc := newTripService(repo)

	got, err := svc.List(context.Background(), repository.TripFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
