package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetops-api/internal/excel"
	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/service"
	"github.com/nurpe/fleetops-api/internal/stats"
)

func TestDashboardWorkbook_Sheets(t *testing.T) {
	generator := excel.NewGenerator()
	summary := service.DashboardSummary{
		GeneratedAt: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC),
		Companies:   []stats.SeriesPoint{{ID: "Alpha", Value: 3}},
		CompaniesMonth: []stats.SeriesPoint{
			{ID: stats.NoData, Value: 0},
		},
		StatusToday: []stats.SeriesPoint{{ID: "WAITING", Value: 1, Color: "#F59E0B"}},
		Daily:       make([]stats.DailyBucket, 7),
		Calendar:    []stats.CalendarPoint{{Day: "2024-02-15", Value: 3}},
	}

	content, err := generator.DashboardWorkbook(summary)

	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	assert.Contains(t, sheets, "Companies")
	assert.Contains(t, sheets, "Current month")
	assert.Contains(t, sheets, "Today status")
	assert.Contains(t, sheets, "Last 7 days")
	assert.Contains(t, sheets, "Calendar")

	value, err := file.GetCellValue("Companies", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", value)
}

func TestTripsWorkbook_Rows(t *testing.T) {
	generator := excel.NewGenerator()
	arrival := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		{CompanyName: "Alpha", ArrivalAt: &arrival, UnloadStatus: "WAITING", Cargo: "gravel"},
	}

	content, err := generator.TripsWorkbook(trips,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	company, err := file.GetCellValue("Trips", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", company)

	status, err := file.GetCellValue("Trips", "E6")
	require.NoError(t, err)
	assert.Equal(t, "WAITING", status)
}
