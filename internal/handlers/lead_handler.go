package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

type createLeadRequest struct {
	ClientID   int    `json:"client_id" binding:"required"`
	CampaignID *int   `json:"campaign_id"`
	LeadSource string `json:"lead_source"`
	Stage      string `json:"stage"`
	AssignedTo *int   `json:"assigned_to"`
}

type updateStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead := &models.Lead{
		ClientID:   req.ClientID,
		CampaignID: req.CampaignID,
		LeadSource: req.LeadSource,
		Stage:      req.Stage,
		AssignedTo: req.AssignedTo,
	}
	if err := h.Service.Create(lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	stage := c.Query("stage")
	assignedTo, _ := strconv.Atoi(c.DefaultQuery("assigned_to", "0"))
	leads, err := h.Service.List(stage, assignedTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	lead, err := h.Service.GetByID(id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateStage moves a lead through the funnel.
func (h *LeadHandler) UpdateStage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateStage(id, req.Stage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "stage": req.Stage})
}
