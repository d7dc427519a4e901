package project

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
	rg.GET("/projects", h.Search)
	rg.GET("/projects/:id", h.Get)
	rg.POST("/projects", h.Create)
	rg.PATCH("/projects/:id", h.Update)
	rg.DELETE("/projects/:id", h.Delete)
	rg.POST("/projects/:id/join", h.Join)

	rg.GET("/engagements", h.ListEngagements)
	rg.POST("/engagements/:id/hours", h.LogHours)
	rg.PATCH("/engagements/:id", h.UpdateEngagement)

	rg.GET("/skills", h.ListSkills)
	rg.POST("/skills", h.AddSkill)
}

func (h *Handler) Create(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only NGOs can create projects")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create project")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load project")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) Search(c *gin.Context) {
	var (
		list []domain.Project
		err  error
	)
	if ngoID := c.Query("ngo_id"); ngoID != "" {
		list, err = h.service.ListByNgo(c.Request.Context(), ngoID)
	} else if c.GetString("role") == string(domain.RoleNgo) && c.Query("mine") == "true" {
		list, err = h.service.ListByNgo(c.Request.Context(), c.GetString("user_id"))
	} else {
		list, err = h.service.Search(c.Request.Context(), SearchFilters{
			Query:    c.Query("q"),
			Category: c.Query("category"),
			Location: c.Query("location"),
			Urgency:  domain.Urgency(c.Query("urgency")),
		})
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load projects")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projects": list})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only edit your own projects")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown project status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update project")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own projects")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete project")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Join(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleVolunteer) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only volunteers can join projects")
		return
	}

	opts := JoinOptions{Idempotent: c.Query("idempotent") == "true"}

	e, err := h.service.Join(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("user_name"), opts)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrProjectNotActive):
			response.Error(c, http.StatusConflict, "CONFLICT", "Project is not accepting volunteers")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to join project")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"engagement": e})
}

func (h *Handler) ListEngagements(c *gin.Context) {
	list, err := h.service.ListEngagements(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load engagements")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"engagements": list})
}

func (h *Handler) LogHours(c *gin.Context) {
	var req LogHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hours must be greater than zero")
		return
	}

	e, err := h.service.LogHours(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Hours)
	if err != nil {
		h.engagementError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"engagement": e})
}

func (h *Handler) UpdateEngagement(c *gin.Context) {
	var req UpdateEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateEngagement(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		h.engagementError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"engagement": e})
}

func (h *Handler) engagementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Engagement not found")
	case errors.Is(err, ErrNotEngaged):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only update your own engagements")
	case errors.Is(err, ErrInvalidHours), errors.Is(err, ErrInvalidProgress), errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update engagement")
	}
}

func (h *Handler) AddSkill(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleVolunteer) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only volunteers can add skills")
		return
	}

	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		return
	}

	sk, err := h.service.AddSkill(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		if errors.Is(err, ErrSkillNameRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add skill")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"skill": sk})
}

func (h *Handler) ListSkills(c *gin.Context) {
	list, err := h.service.ListSkills(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load skills")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"skills": list})
}
