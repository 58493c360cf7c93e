package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/fleetops-api/internal/http/middleware"
	"github.com/nurpe/fleetops-api/internal/repository"
	"github.com/nurpe/fleetops-api/internal/service"
)

type tripRequest struct {
	CompanyID    *uuid.UUID `json:"company_id"`
	VehicleID    *uuid.UUID `json:"vehicle_id"`
	DriverID     *uuid.UUID `json:"driver_id"`
	CompanyName  string     `json:"company_name"`
	ArrivalAt    string     `json:"arrival_at"`
	UnloadStatus string     `json:"unload_status"`
	Cargo        string     `json:"cargo"`
	Notes        string     `json:"notes"`
}

func (r tripRequest) toInput() service.TripInput {
	return service.TripInput{
		CompanyID:    r.CompanyID,
		VehicleID:    r.VehicleID,
		DriverID:     r.DriverID,
		CompanyName:  r.CompanyName,
		ArrivalAt:    r.ArrivalAt,
		UnloadStatus: r.UnloadStatus,
		Cargo:        r.Cargo,
		Notes:        r.Notes,
	}
}

func (h *Handler) listTrips(c *gin.Context) {
	filter := repository.TripFilter{
		Status: strings.ToUpper(strings.TrimSpace(c.Query("status"))),
	}
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id"})
			return
		}
		filter.CompanyID = &companyID
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		filter.To = &to
	}

	trips, err := h.trips.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := h.trips.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) createTrip(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.trips.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) updateTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := h.trips.Update(c.Request.Context(), id, req.toInput(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// previewTrip returns the change list the edit modal shows before saving.
func (h *Handler) previewTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	changes, err := h.trips.PreviewChanges(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

func (h *Handler) deleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.trips.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTripAudit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.trips.ListAudit(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
