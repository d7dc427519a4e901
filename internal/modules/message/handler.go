package message

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	jwtsvc "impactnet/internal/pkg/jwt"
	"impactnet/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // tighten in prod
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.List)
	rg.POST("/messages", h.Send)
	rg.POST("/messages/:id/read", h.MarkAsRead)
	rg.GET("/messages/unread-count", h.CountUnread)
}

// RegisterWebSocket wires the realtime endpoint. It lives outside the
// auth middleware because browsers cannot set headers on websocket
// dials; the token rides in the query string instead.
func (h *Handler) RegisterWebSocket(rg *gin.RouterGroup) {
	rg.GET("/ws", h.WebSocket)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "recipient_id and body are required")
		return
	}

	m, err := h.service.Send(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipient not found")
		case errors.Is(err, ErrBodyRequired), errors.Is(err, ErrRecipientRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrSelfMessage):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot send a message to yourself")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send message")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": m})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load messages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": list})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	err := h.service.MarkAsRead(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark message as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) CountUnread(c *gin.Context) {
	count, err := h.service.CountUnread(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count unread messages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}

func (h *Handler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("message: websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(claims.UserID, conn)

	defer h.hub.Unregister(claims.UserID)
	for {
		// The connection is push-only; reads just detect disconnects.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
