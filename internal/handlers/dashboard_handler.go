package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

// DashboardHandler serves the chart datasets for the analytics page.
// Every endpoint honors the sidebar filters parsed from the query
// string (see parseFilters); fully client-side concerns like chart
// styling stay out of the payloads.
type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary(parseFilters(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) Timeseries(c *gin.Context) {
	points, err := h.Service.Timeseries(parseFilters(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if points == nil {
		points = []models.TimeseriesPoint{}
	}
	c.JSON(http.StatusOK, points)
}

func (h *DashboardHandler) Heatmap(c *gin.Context) {
	cells, err := h.Service.Heatmap(parseFilters(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cells == nil {
		cells = []models.HeatmapCell{}
	}
	c.JSON(http.StatusOK, cells)
}

func (h *DashboardHandler) Sectors(c *gin.Context) {
	counts, err := h.Service.CompaniesBySector()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if counts == nil {
		counts = []models.SectorCount{}
	}
	c.JSON(http.StatusOK, counts)
}

// Funnel always returns all four stages in their fixed order.
func (h *DashboardHandler) Funnel(c *gin.Context) {
	stages, err := h.Service.Funnel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stages)
}
