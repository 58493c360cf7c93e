package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nurpe/fleetops-api/internal/model"
	"github.com/nurpe/fleetops-api/internal/repository"
)

type ExcelGenerator interface {
	DashboardWorkbook(summary DashboardSummary) ([]byte, error)
	TripsWorkbook(trips []model.Trip, from, to time.Time) ([]byte, error)
}

type PDFGenerator interface {
	DashboardReport(summary DashboardSummary) ([]byte, error)
}

type ExportService struct {
	dashboard *DashboardService
	trips     TripLister
	excel     ExcelGenerator
	pdf       PDFGenerator
}

func NewExportService(dashboard *DashboardService, trips TripLister, excel ExcelGenerator, pdf PDFGenerator) *ExportService {
	return &ExportService{dashboard: dashboard, trips: trips, excel: excel, pdf: pdf}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ExportService) DashboardExcel(ctx context.Context) (*ExportResult, error) {
	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.DashboardWorkbook(*summary)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("dashboard-%s.xlsx", summary.GeneratedAt.Format("20060102-150405"))
	return &ExportResult{FileName: name, Content: content}, nil
}

func (s *ExportService) DashboardPDF(ctx context.Context) (*ExportResult, error) {
	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.DashboardReport(*summary)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("dashboard-%s.pdf", summary.GeneratedAt.Format("20060102-150405"))
	return &ExportResult{FileName: name, Content: content}, nil
}

func (s *ExportService) TripsExcel(ctx context.Context, from, to time.Time) (*ExportResult, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	from = dateOnly(from)
	to = dateOnly(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: period_start must be before or equal to period_end", ErrInvalidInput)
	}
	endExclusive := to.Add(24 * time.Hour)

	trips, err := s.trips.List(ctx, repository.TripFilter{From: &from, To: &endExclusive})
	if err != nil {
		return nil, err
	}
	content, err := s.excel.TripsWorkbook(trips, from, to)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("trips-%s-%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return &ExportResult{FileName: name, Content: content}, nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
