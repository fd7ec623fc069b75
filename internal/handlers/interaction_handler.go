package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type InteractionHandler struct {
	Service *services.InteractionService
}

type createInteractionRequest struct {
	ClientID        int    `json:"client_id" binding:"required"`
	ActionType      string `json:"action_type" binding:"required"`
	Notes           string `json:"notes"`
	InteractionDate string `json:"interaction_date" binding:"required"`
	Outcome         string `json:"outcome"`
	NextActionDate  string `json:"next_action_date"`
	AssignedTo      *int   `json:"assigned_to"`
	CampaignID      *int   `json:"campaign_id"`
}

func NewInteractionHandler(service *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{Service: service}
}

func (h *InteractionHandler) Create(c *gin.Context) {
	var req createInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := getSession(c)
	in := &models.Interaction{
		ClientID:        req.ClientID,
		ActionType:      req.ActionType,
		Notes:           req.Notes,
		InteractionDate: req.InteractionDate,
		Outcome:         req.Outcome,
		NextActionDate:  req.NextActionDate,
		AssignedTo:      req.AssignedTo,
		CampaignID:      req.CampaignID,
	}
	// default the assignee to the signed-in rep
	if in.AssignedTo == nil && sess.UserID > 0 {
		uid := sess.UserID
		in.AssignedTo = &uid
	}
	if err := h.Service.Create(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// List applies the sidebar filters to the interactions x clients join.
func (h *InteractionHandler) List(c *gin.Context) {
	rows, err := h.Service.ListFiltered(parseFilters(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []models.InteractionRow{}
	}
	c.JSON(http.StatusOK, rows)
}
