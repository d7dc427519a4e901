package badge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"impactnet/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/badges", h.List)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load badges")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"badges": list})
}
