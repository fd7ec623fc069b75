package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

type createClientRequest struct {
	CompanyName    string  `json:"company_name" binding:"required"`
	Sector         string  `json:"sector"`
	Region         string  `json:"region"`
	Location       string  `json:"location"`
	Size           string  `json:"size"`
	Revenue        float64 `json:"revenue"`
	PotentialValue float64 `json:"potential_value"`
	Notes          string  `json:"notes"`
}

type createContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LinkedIn    string `json:"linkedin"`
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// @Summary  Add a client
// @Tags     Clients
// @Accept   json
// @Produce  json
// @Param    client  body      createClientRequest  true  "Client fields"
// @Success  201     {object}  models.Client
// @Failure  400     {object}  map[string]string
// @Router   /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := &models.Client{
		CompanyName:    req.CompanyName,
		Sector:         req.Sector,
		Region:         req.Region,
		Location:       req.Location,
		Size:           req.Size,
		Revenue:        req.Revenue,
		PotentialValue: req.PotentialValue,
		Notes:          req.Notes,
	}
	id, err := h.Service.Create(client)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = int(id)
	c.JSON(http.StatusCreated, client)
}

// @Summary  List clients, newest first, with optional substring search
// @Tags     Clients
// @Produce  json
// @Param    q   query     string  false  "Matches company name, sector, region or location (case-insensitive)"
// @Success  200  {array}  models.Client
// @Router   /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Service.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.Service.GetByID(id)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) AddContact(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact := &models.Contact{
		ClientID:    clientID,
		Name:        req.Name,
		Designation: req.Designation,
		Phone:       req.Phone,
		Email:       req.Email,
		LinkedIn:    req.LinkedIn,
	}
	id, err := h.Service.AddContact(contact)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact.ID = int(id)
	c.JSON(http.StatusCreated, contact)
}

func (h *ClientHandler) ListContacts(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	contacts, err := h.Service.ListContacts(clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}
