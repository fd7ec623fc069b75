package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type MeetingHandler struct {
	Service *services.MeetingService
}

type createMeetingRequest struct {
	ClientID         int     `json:"client_id" binding:"required"`
	MeetingDate      string  `json:"meeting_date" binding:"required"`
	Purpose          string  `json:"purpose" binding:"required"`
	Notes            string  `json:"notes"`
	NextSteps        string  `json:"next_steps"`
	OpportunityValue float64 `json:"opportunity_value"`
}

type updateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewMeetingHandler(service *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: service}
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.Meeting{
		ClientID:         req.ClientID,
		MeetingDate:      req.MeetingDate,
		Purpose:          req.Purpose,
		Notes:            req.Notes,
		NextSteps:        req.NextSteps,
		OpportunityValue: req.OpportunityValue,
	}
	if err := h.Service.Create(m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MeetingHandler) List(c *gin.Context) {
	clientID, _ := strconv.Atoi(c.DefaultQuery("client_id", "0"))
	status := c.Query("status")
	meetings, err := h.Service.List(clientID, status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if meetings == nil {
		meetings = []*models.Meeting{}
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
