package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type TrackerHandler struct {
	Service *services.TrackerService
}

type trackerEntryRequest struct {
	Week             string `json:"week"`
	DateRange        string `json:"date_range"`
	CompanyName      string `json:"company_name" binding:"required"`
	Address          string `json:"address"`
	ContactPerson    string `json:"contact_person"`
	Telephone        string `json:"telephone"`
	Email            string `json:"email"`
	ProposalStatus   string `json:"proposal_status"`
	SiteVisit        string `json:"site_visit"`
	FollowUpComments string `json:"follow_up_comments"`
	Sector           string `json:"sector"`
}

func NewTrackerHandler(service *services.TrackerService) *TrackerHandler {
	return &TrackerHandler{Service: service}
}

func (req trackerEntryRequest) toModel() *models.TrackerEntry {
	return &models.TrackerEntry{
		Week:             req.Week,
		DateRange:        req.DateRange,
		CompanyName:      req.CompanyName,
		Address:          req.Address,
		ContactPerson:    req.ContactPerson,
		Telephone:        req.Telephone,
		Email:            req.Email,
		ProposalStatus:   req.ProposalStatus,
		SiteVisit:        req.SiteVisit,
		FollowUpComments: req.FollowUpComments,
		Sector:           req.Sector,
	}
}

func (h *TrackerHandler) Create(c *gin.Context) {
	var req trackerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := req.toModel()
	id, err := h.Service.Create(entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.ID = int(id)
	c.JSON(http.StatusCreated, entry)
}

// Import accepts a batch of tracker rows and writes them in one
// transaction. Any invalid row rejects the whole batch.
func (h *TrackerHandler) Import(c *gin.Context) {
	var reqs []trackerEntryRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries := make([]*models.TrackerEntry, 0, len(reqs))
	for _, r := range reqs {
		entries = append(entries, r.toModel())
	}
	if err := h.Service.Import(entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": len(entries)})
}

func (h *TrackerHandler) List(c *gin.Context) {
	entries, err := h.Service.List(c.Query("week"), c.Query("sector"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []*models.TrackerEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
