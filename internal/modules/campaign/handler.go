package campaign

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
	rg.GET("/campaigns", h.Search)
	rg.GET("/campaigns/:id", h.Get)
	rg.POST("/campaigns", h.Create)
	rg.PATCH("/campaigns/:id", h.Update)
	rg.POST("/campaigns/:id/donate", h.Donate)

	rg.GET("/donations", h.ListDonations)
	rg.GET("/impact-reports", h.ListImpactReports)
	rg.POST("/impact-reports/:id/publish", h.PublishImpactReport)
}

func (h *Handler) Create(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only NGOs can create campaigns")
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create campaign")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"campaign": camp})
}

func (h *Handler) Get(c *gin.Context) {
	camp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaign")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

func (h *Handler) Search(c *gin.Context) {
	var (
		list []domain.Campaign
		err  error
	)
	if ngoID := c.Query("ngo_id"); ngoID != "" {
		list, err = h.service.ListByNgo(c.Request.Context(), ngoID)
	} else if c.GetString("role") == string(domain.RoleNgo) && c.Query("mine") == "true" {
		list, err = h.service.ListByNgo(c.Request.Context(), c.GetString("user_id"))
	} else {
		list, err = h.service.Search(c.Request.Context(), c.Query("q"), c.Query("category"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaigns")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"campaigns": list})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only edit your own campaigns")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update campaign")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

func (h *Handler) Donate(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleDonor) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only donors can donate")
		return
	}

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must be greater than zero")
		return
	}

	d, err := h.service.Donate(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Campaign not found")
		case errors.Is(err, ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "amount must be greater than zero")
		case errors.Is(err, ErrCampaignClosed):
			response.Error(c, http.StatusConflict, "CONFLICT", "Campaign is closed for donations")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record donation")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"donation": d})
}

func (h *Handler) ListDonations(c *gin.Context) {
	list, err := h.service.ListDonationsByDonor(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load donations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"donations": list})
}

func (h *Handler) ListImpactReports(c *gin.Context) {
	list, err := h.service.ListImpactReports(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load impact reports")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"impact_reports": list})
}

func (h *Handler) PublishImpactReport(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleNgo) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only NGOs can publish impact reports")
		return
	}

	var req PublishImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "impact is required")
		return
	}

	rep, err := h.service.PublishImpactReport(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Impact)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Impact report not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only publish reports for your own campaigns")
		case errors.Is(err, ErrAlreadyPublished):
			response.Error(c, http.StatusConflict, "CONFLICT", "Impact report is already published")
		case errors.Is(err, ErrImpactRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "impact is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to publish impact report")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"impact_report": rep})
}
