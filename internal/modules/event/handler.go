package event

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
	rg.GET("/events", h.List)
	rg.GET("/events/:id", h.Get)
	rg.POST("/events", h.Create)
	rg.PATCH("/events/:id", h.Update)
	rg.POST("/events/:id/register", h.Register)
	rg.GET("/volunteer-events", h.ListVolunteerEvents)
}

func (h *Handler) Create(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only NGOs can create events")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) List(c *gin.Context) {
	var (
		list []domain.Event
		err  error
	)
	switch {
	case c.Query("ngo_id") != "":
		list, err = h.service.ListByNgo(c.Request.Context(), c.Query("ngo_id"))
	case c.GetString("role") == string(domain.RoleNgo) && c.Query("mine") == "true":
		list, err = h.service.ListByNgo(c.Request.Context(), c.GetString("user_id"))
	case c.Query("q") != "" || c.Query("category") != "":
		list, err = h.service.Search(c.Request.Context(), c.Query("q"), c.Query("category"))
	default:
		list, err = h.service.ListUpcoming(c.Request.Context())
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": list})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only edit your own events")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update event")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Register(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))
	if role != domain.RoleVolunteer && role != domain.RoleDonor {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only volunteers and donors can register for events")
		return
	}

	opts := RegisterOptions{Idempotent: c.Query("idempotent") == "true"}

	reg, err := h.service.Register(c.Request.Context(), c.Param("id"), c.GetString("user_id"), role, opts)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
		case errors.Is(err, ErrEventFull):
			response.Error(c, http.StatusConflict, "CONFLICT", "Event has reached its participant limit")
		case errors.Is(err, ErrEventNotUpcoming):
			response.Error(c, http.StatusConflict, "CONFLICT", "Event is not open for registration")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register for event")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"registration": reg})
}

func (h *Handler) ListVolunteerEvents(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleVolunteer) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only volunteers have a personal event list")
		return
	}

	list, err := h.service.ListVolunteerEvents(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"volunteer_events": list})
}
