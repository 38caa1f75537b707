package communication

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/communication"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *communication.Service
	auth    *middleware.AuthMiddleware
}

func NewHandler(service *communication.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{service: service, auth: auth}
}

// RegisterRoutes mounts the message routes. The inbox views are keyed by
// the caller and need an identity in every auth mode.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/communications")
	{
		messages.POST("", h.SendMessage)
		messages.GET("/inbox", h.auth.RequireIdentity(), h.Inbox)
		messages.GET("/unread/count", h.auth.RequireIdentity(), h.UnreadCount)
		messages.PUT("/:id/read", h.MarkRead)
	}
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	msg, err := h.service.Send(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Message sent successfully", msg)
}

func (h *Handler) Inbox(c *gin.Context) {
	messages, err := h.service.Inbox(c.Request.Context(), middleware.IdentityFrom(c).ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, messages)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), middleware.IdentityFrom(c).ID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, gin.H{"unreadCount": n})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	msg, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Message marked as read", msg)
}
