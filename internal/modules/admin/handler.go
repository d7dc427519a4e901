package admin

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

// RegisterRoutes expects rg to already be wrapped in the admin-only
// middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/registrations", h.ListRegistrations)
	rg.POST("/registrations/:id/approve", h.ApproveRegistration)
	rg.POST("/registrations/:id/reject", h.RejectRegistration)
	rg.GET("/users", h.ListUsers)
	rg.GET("/statistics", h.GetStatistics)
}

func (h *Handler) ListRegistrations(c *gin.Context) {
	status := domain.VerificationStatus(c.DefaultQuery("status", string(domain.VerificationPending)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	regs, total, err := h.service.ListRegistrations(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load registrations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"registrations": regs,
		"total":         total,
		"page":          page,
	})
}

func (h *Handler) ApproveRegistration(c *gin.Context) {
	reg, err := h.service.ApproveRegistration(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.decisionError(c, err, "approve")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registration": reg})
}

func (h *Handler) RejectRegistration(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "reason is required")
		return
	}

	reg, err := h.service.RejectRegistration(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Reason)
	if err != nil {
		h.decisionError(c, err, "reject")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registration": reg})
}

func (h *Handler) decisionError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Registration not found")
	case errors.Is(err, ErrAlreadyDecided):
		response.Error(c, http.StatusConflict, "CONFLICT", "Registration has already been decided")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "reason is required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to "+action+" registration")
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	filter := UserListFilter{
		Role:  c.Query("role"),
		Query: c.Query("q"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.service.ListUsers(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
	})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
