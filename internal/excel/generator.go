package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/service"
	"github.com/nurpe/fleetops-api/internal/stats"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// DashboardWorkbook renders one sheet per chart series.
func (g *Generator) DashboardWorkbook(summary service.DashboardSummary) ([]byte, error) {
	file := excelize.NewFile()

	companiesSheet := "Companies"
	file.SetSheetName("Sheet1", companiesSheet)
	g.writeSeries(file, companiesSheet, "Company", summary.Companies)

	monthSheet := "Current month"
	file.NewSheet(monthSheet)
	g.writeSeries(file, monthSheet, "Company", summary.CompaniesMonth)

	statusSheet := "Today status"
	file.NewSheet(statusSheet)
	g.writeSeries(file, statusSheet, "Status", summary.StatusToday)

	dailySheet := "Last 7 days"
	file.NewSheet(dailySheet)
	g.writeDaily(file, dailySheet, summary)

	calendarSheet := "Calendar"
	file.NewSheet(calendarSheet)
	g.writeCalendar(file, calendarSheet, summary)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TripsWorkbook renders the trip listing for a period.
func (g *Generator) TripsWorkbook(trips []model.Trip, from, to time.Time) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Trips"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", from.Format("2006-01-02"))
	set("A2", "Period end")
	set("B2", to.Format("2006-01-02"))
	set("A3", "Trip count")
	set("B3", len(trips))

	tableRow := 5
	headers := []string{"Arrival", "Company", "Vehicle", "Driver", "Status", "Cargo"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, trip := range trips {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), formatArrival(trip.ArrivalAt))
		set(fmt.Sprintf("B%d", row), trip.CompanyName)
		set(fmt.Sprintf("C%d", row), formatString(trip.VehiclePlate))
		set(fmt.Sprintf("D%d", row), formatString(trip.DriverName))
		set(fmt.Sprintf("E%d", row), trip.UnloadStatus)
		set(fmt.Sprintf("F%d", row), trip.Cargo)
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 36)
	_ = file.SetColWidth(sheet, "C", "D", 24)
	_ = file.SetColWidth(sheet, "E", "E", 14)
	_ = file.SetColWidth(sheet, "F", "F", 40)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSeries(file *excelize.File, sheet, label string, points []stats.SeriesPoint) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", label)
	set("B1", "Trips")
	for i, point := range points {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), point.ID)
		set(fmt.Sprintf("B%d", row), point.Value)
	}
	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "B", 10)
}

func (g *Generator) writeDaily(file *excelize.File, sheet string, summary service.DashboardSummary) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Date", "Day", "Waiting", "Completed", "Unloaded", "Canceled", "Unknown"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	for i, bucket := range summary.Daily {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), bucket.Date)
		set(fmt.Sprintf("B%d", row), bucket.DayName)
		set(fmt.Sprintf("C%d", row), bucket.Waiting)
		set(fmt.Sprintf("D%d", row), bucket.Completed)
		set(fmt.Sprintf("E%d", row), bucket.Unloaded)
		set(fmt.Sprintf("F%d", row), bucket.Canceled)
		set(fmt.Sprintf("G%d", row), bucket.Unknown)
	}
	_ = file.SetColWidth(sheet, "A", "B", 14)
	_ = file.SetColWidth(sheet, "C", "G", 12)
}

func (g *Generator) writeCalendar(file *excelize.File, sheet string, summary service.DashboardSummary) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Day")
	set("B1", "Trips")
	for i, point := range summary.Calendar {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), point.Day)
		set(fmt.Sprintf("B%d", row), point.Value)
	}
	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "B", 10)
}

func formatArrival(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
