package resource

import (
	"errors"
	"net/http"

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
	rg.GET("/resources", h.List)
	rg.POST("/resources", h.Share)
	rg.POST("/resources/:id/request", h.Request)
	rg.POST("/resources/:id/release", h.Release)
}

func (h *Handler) requireNgo(c *gin.Context) bool {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Resource sharing is for NGOs only")
		return false
	}
	return true
}

func (h *Handler) Share(c *gin.Context) {
	if !h.requireNgo(c) {
		return
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	res, err := h.service.Share(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to share resource")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"resource": res})
}

func (h *Handler) List(c *gin.Context) {
	if !h.requireNgo(c) {
		return
	}

	ngoID := c.Query("ngo_id")
	if c.Query("mine") == "true" {
		ngoID = c.GetString("user_id")
	}

	list, err := h.service.List(c.Request.Context(), ngoID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load resources")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resources": list})
}

func (h *Handler) Request(c *gin.Context) {
	if !h.requireNgo(c) {
		return
	}

	res, err := h.service.Request(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		case errors.Is(err, ErrAlreadyRequested):
			response.Error(c, http.StatusConflict, "CONFLICT", "Resource is already requested")
		case errors.Is(err, ErrOwnResource):
			response.Error(c, http.StatusConflict, "CONFLICT", "You cannot request your own resource")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to request resource")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": res})
}

func (h *Handler) Release(c *gin.Context) {
	if !h.requireNgo(c) {
		return
	}

	res, err := h.service.Release(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only release your own resources")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to release resource")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": res})
}
