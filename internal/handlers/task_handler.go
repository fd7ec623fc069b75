package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"geronimocrm/internal/models"
	"geronimocrm/internal/services"
)

type TaskHandler struct {
	Service *services.TaskService
}

type createTaskRequest struct {
	ClientID      *int   `json:"client_id"`
	InteractionID *int   `json:"interaction_id"`
	Title         string `json:"title" binding:"required"`
	DueDate       string `json:"due_date" binding:"required"`
	AssignedTo    *int   `json:"assigned_to"`
}

type changeTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := getSession(c)
	task := &models.Task{
		ClientID:      req.ClientID,
		InteractionID: req.InteractionID,
		Title:         req.Title,
		DueDate:       req.DueDate,
		AssignedTo:    req.AssignedTo,
	}
	if task.AssignedTo == nil && sess.UserID > 0 {
		uid := sess.UserID
		task.AssignedTo = &uid
	}
	if err := h.Service.Create(task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetAll filters by assignee, status and overdue flag.
func (h *TaskHandler) GetAll(c *gin.Context) {
	var filter models.TaskFilter
	if v := c.Query("assigned_to"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			filter.AssignedTo = &id
		}
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if c.Query("overdue") == "true" {
		today := time.Now().Format("2006-01-02")
		filter.DueBefore = &today
	}
	tasks, err := h.Service.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req changeTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.ChangeStatus(id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
