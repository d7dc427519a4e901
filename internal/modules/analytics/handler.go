package analytics

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
	rg.GET("/analytics", h.Get)
	rg.GET("/export", h.Export)
}

// Get returns the role-appropriate dashboard numbers for the caller.
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	var (
		data any
		err  error
	)
	switch domain.UserRole(c.GetString("role")) {
	case domain.RoleNgo:
		data, err = h.service.ForNgo(c.Request.Context(), userID)
	case domain.RoleVolunteer:
		data, err = h.service.ForVolunteer(c.Request.Context(), userID)
	case domain.RoleDonor:
		data, err = h.service.ForDonor(c.Request.Context(), userID)
	default:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No analytics for this role")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analytics")
		return
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) Export(c *gin.Context) {
	bundle, err := h.service.Export(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export data")
		return
	}
	response.Success(c, http.StatusOK, bundle)
}
