package auth

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

// RegisterRoutes wires the public auth endpoints. The role segment is
// volunteer, donor or ngo; "admin" is accepted for login only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/:role/signup", h.Signup)
	rg.POST("/auth/:role/login", h.Login)
	rg.GET("/auth/ngo-verification", h.CheckVerification)
}

// RegisterProtectedRoutes wires endpoints behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Signup(c *gin.Context) {
	role := domain.UserRole(c.Param("role"))

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Signup(c.Request.Context(), role, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown signup role")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "CONFLICT", "An account with this email already exists")
		case errors.Is(err, ErrRegistrationNumberExists):
			response.Error(c, http.StatusConflict, "CONFLICT", "An NGO with this registration number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) Login(c *gin.Context) {
	role := c.Param("role")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var (
		result *AuthResult
		err    error
	)
	if role == string(domain.RoleAdmin) {
		result, err = h.service.AdminLogin(c.Request.Context(), &req)
	} else {
		result, err = h.service.Login(c.Request.Context(), domain.UserRole(role), &req)
	}
	if err != nil {
		var rejected *VerificationRejectedError
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown login role")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		case errors.Is(err, ErrVerificationPending):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Your NGO registration is pending admin approval")
		case errors.As(err, &rejected):
			msg := "Your NGO registration was rejected"
			if rejected.Reason != "" {
				msg = msg + ": " + rejected.Reason
			}
			response.Error(c, http.StatusForbidden, "FORBIDDEN", msg)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) CheckVerification(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email query parameter is required")
		return
	}

	status, err := h.service.CheckVerification(c.Request.Context(), email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check verification status")
		return
	}
	response.Success(c, http.StatusOK, status)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	if userID == AdminUserID {
		response.Success(c, http.StatusOK, gin.H{"user": UserPublic{
			ID:   AdminUserID,
			Role: string(domain.RoleAdmin),
			Name: "Administrator",
		}})
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": publicUser(user)})
}
