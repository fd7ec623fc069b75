package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type TargetHandler struct {
	Service *services.TargetService
}

type setTargetRequest struct {
	UserID           int     `json:"user_id" binding:"required"`
	Month            int     `json:"month" binding:"required"`
	Year             int     `json:"year" binding:"required"`
	NewClientsTarget int     `json:"new_clients_target"`
	ProposalsTarget  int     `json:"proposals_target"`
	RevenueTarget    float64 `json:"revenue_target"`
}

func NewTargetHandler(service *services.TargetService) *TargetHandler {
	return &TargetHandler{Service: service}
}

// Set creates or replaces the target row for (user, month, year).
func (h *TargetHandler) Set(c *gin.Context) {
	var req setTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	target := &models.Target{
		UserID:           req.UserID,
		Month:            req.Month,
		Year:             req.Year,
		NewClientsTarget: req.NewClientsTarget,
		ProposalsTarget:  req.ProposalsTarget,
		RevenueTarget:    req.RevenueTarget,
	}
	if err := h.Service.Set(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, target)
}

func (h *TargetHandler) List(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	targets, err := h.Service.ListByUser(userID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if targets == nil {
		targets = []*models.Target{}
	}
	c.JSON(http.StatusOK, targets)
}

// Performance returns the period target next to observed actuals.
func (h *TargetHandler) Performance(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	perf, err := h.Service.Performance(userID, month, year)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, perf)
}
