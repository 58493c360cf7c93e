package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) dashboardCompanies(c *gin.Context) {
	points, err := h.dashboard.Companies(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) dashboardCompaniesMonth(c *gin.Context) {
	points, err := h.dashboard.CompaniesMonth(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) dashboardStatusToday(c *gin.Context) {
	points, err := h.dashboard.StatusToday(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) dashboardDaily(c *gin.Context) {
	buckets, err := h.dashboard.Daily(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *Handler) dashboardCalendar(c *gin.Context) {
	points, err := h.dashboard.Calendar(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) fieldToday(c *gin.Context) {
	rows, err := h.dashboard.FieldToday(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportDashboard(c *gin.Context) {
	result, err := h.exports.DashboardExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportDashboardPDF(c *gin.Context) {
	result, err := h.exports.DashboardPDF(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

type exportTripsRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

func (h *Handler) exportTrips(c *gin.Context) {
	var req exportTripsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDate(req.PeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_start"})
		return
	}
	end, err := parseDate(req.PeriodEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period_end"})
		return
	}
	result, err := h.exports.TripsExcel(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
