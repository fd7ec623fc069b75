package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"geronimocrm/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

type resetRequest struct {
	Token   string `json:"token" binding:"required"`
	Confirm bool   `json:"confirm"`
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// RequestReset is the first step of the double confirmation: it hands
// out a short-lived token the caller must echo back.
func (h *AdminHandler) RequestReset(c *gin.Context) {
	token := h.Service.RequestReset()
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"warning": "resetting erases the whole database and cannot be undone",
	})
}

// Reset erases and reseeds the database. Requires the token from
// RequestReset plus confirm=true in the same body.
func (h *AdminHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := getSession(c)
	if err := h.Service.Reset(req.Token, req.Confirm); err != nil {
		switch {
		case errors.Is(err, services.ErrResetNotConfirmed), errors.Is(err, services.ErrResetTokenInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	logrus.Warnf("[admin][reset] database reset by %q", sess.Username)
	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}
