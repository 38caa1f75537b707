package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/account"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service account.AccountServicer
}

func NewHandler(service account.AccountServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admins := r.Group("/admins")
	{
		admins.GET("", h.ListAdmins)
		admins.PUT("/:id", h.UpdateAdmin)
		admins.DELETE("/:id", h.DeleteAdmin)
	}
}

func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, admins, len(admins))
}

func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateAdminRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	admin, err := h.service.UpdateAdmin(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Admin updated successfully", admin)
}

func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAdmin(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Admin deleted successfully")
}
