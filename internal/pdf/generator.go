package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/fleetops-api/internal/service"
	"github.com/nurpe/fleetops-api/internal/stats"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// DashboardReport renders the five dashboard series as a one-page summary.
func (g *Generator) DashboardReport(summary service.DashboardSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Fleet operations dashboard", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", summary.GeneratedAt.Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.seriesSection(pdf, "Trips by company (all time)", "Company", summary.Companies)
	g.seriesSection(pdf, "Trips by company (current month)", "Company", summary.CompaniesMonth)
	g.seriesSection(pdf, "Today by status", "Status", summary.StatusToday)
	g.dailySection(pdf, summary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) seriesSection(pdf *gofpdf.Fpdf, title, label string, points []stats.SeriesPoint) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	if len(points) == 1 && points[0].ID == stats.NoData {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, "No data for this period", "", 1, "L", false, 0, "")
		pdf.Ln(2)
		return
	}

	g.tableRow(pdf, []string{label, "Trips"}, true)
	for _, point := range points {
		g.tableRow(pdf, []string{point.ID, fmt.Sprintf("%d", point.Value)}, false)
	}
	pdf.Ln(2)
}

func (g *Generator) dailySection(pdf *gofpdf.Fpdf, summary service.DashboardSummary) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Last 7 days", "", 1, "L", false, 0, "")

	widths := []float64{28, 18, 24, 24, 24, 24, 24}
	headers := []string{"Date", "Day", "Waiting", "Completed", "Unloaded", "Canceled", "Unknown"}
	g.tableRowWidths(pdf, headers, widths, true)
	for _, bucket := range summary.Daily {
		row := []string{
			bucket.Date,
			bucket.DayName,
			fmt.Sprintf("%d", bucket.Waiting),
			fmt.Sprintf("%d", bucket.Completed),
			fmt.Sprintf("%d", bucket.Unloaded),
			fmt.Sprintf("%d", bucket.Canceled),
			fmt.Sprintf("%d", bucket.Unknown),
		}
		g.tableRowWidths(pdf, row, widths, false)
	}
}

func (g *Generator) tableRow(pdf *gofpdf.Fpdf, cols []string, header bool) {
	g.tableRowWidths(pdf, cols, []float64{120, 40}, header)
}

func (g *Generator) tableRowWidths(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
