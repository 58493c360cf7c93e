package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/fleetops-api/internal/http/middleware"
	"github.com/nurpe/fleetops-api/internal/service"
)

type Handler struct {
	companies *service.CompanyService
	drivers   *service.DriverService
	vehicles  *service.VehicleService
	trips     *service.TripService
	dashboard *service.DashboardService
	exports   *service.ExportService
	log       zerolog.Logger
}

func NewHandler(
	companies *service.CompanyService,
	drivers *service.DriverService,
	vehicles *service.VehicleService,
	trips *service.TripService,
	dashboard *service.DashboardService,
	exports *service.ExportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		companies: companies,
		drivers:   drivers,
		vehicles:  vehicles,
		trips:     trips,
		dashboard: dashboard,
		exports:   exports,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/companies", h.listCompanies)
	protected.GET("/companies/:id", h.getCompany)
	protected.GET("/drivers", h.listDrivers)
	protected.GET("/drivers/:id", h.getDriver)
	protected.GET("/vehicles", h.listVehicles)
	protected.GET("/vehicles/:id", h.getVehicle)
	protected.GET("/trips", h.listTrips)
	protected.GET("/trips/:id", h.getTrip)
	protected.GET("/trips/:id/audit", h.listTripAudit)

	protected.GET("/dashboard/companies", h.dashboardCompanies)
	protected.GET("/dashboard/companies/month", h.dashboardCompaniesMonth)
	protected.GET("/dashboard/status/today", h.dashboardStatusToday)
	protected.GET("/dashboard/daily", h.dashboardDaily)
	protected.GET("/dashboard/calendar", h.dashboardCalendar)
	protected.GET("/field/today", h.fieldToday)

	write := protected.Group("/")
	write.Use(middleware.RequireWriter())
	write.POST("/companies", h.createCompany)
	write.PUT("/companies/:id", h.updateCompany)
	write.DELETE("/companies/:id", h.deleteCompany)
	write.POST("/drivers", h.createDriver)
	write.PUT("/drivers/:id", h.updateDriver)
	write.DELETE("/drivers/:id", h.deleteDriver)
	write.POST("/vehicles", h.createVehicle)
	write.PUT("/vehicles/:id", h.updateVehicle)
	write.DELETE("/vehicles/:id", h.deleteVehicle)
	write.POST("/trips", h.createTrip)
	write.PUT("/trips/:id", h.updateTrip)
	write.DELETE("/trips/:id", h.deleteTrip)
	write.POST("/trips/:id/preview", h.previewTrip)
	write.POST("/export/dashboard", h.exportDashboard)
	write.POST("/export/dashboard/pdf", h.exportDashboardPDF)
	write.POST("/export/trips", h.exportTrips)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
