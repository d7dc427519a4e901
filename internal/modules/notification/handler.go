package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"impactnet/internal/domain"
	"impactnet/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.POST("/notifications/:id/read", h.MarkAsRead)
	rg.POST("/notifications/read-all", h.MarkAllAsRead)
	rg.POST("/announcements", h.CreateAnnouncement)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, unread, err := h.service.List(c.Request.Context(), userID, role, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	err := h.service.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID, role); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notifications as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

type createAnnouncementRequest struct {
	Title          string   `json:"title" binding:"required"`
	Message        string   `json:"message" binding:"required"`
	TargetAudience []string `json:"target_audience" binding:"required,min=1"`
}

func (h *Handler) CreateAnnouncement(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only NGOs can send announcements")
		return
	}

	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a := &domain.Announcement{
		NgoID:          c.GetString("user_id"),
		NgoName:        c.GetString("user_name"),
		Title:          req.Title,
		Message:        req.Message,
		TargetAudience: req.TargetAudience,
	}

	if err := h.service.Announce(c.Request.Context(), a); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create announcement")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"announcement": a})
}
