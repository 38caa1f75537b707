package clinic

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	clinics := r.Group("/clinics")
	{
		clinics.GET("", h.ListStaff)
		clinics.POST("", h.CreateStaff)
		clinics.PUT("/:id", h.UpdateStaff)
		clinics.DELETE("/:id", h.DeleteStaff)
	}
}

// createdStaff is the short projection returned after creating a member.
type createdStaff struct {
	ID       uuid.UUID     `json:"id"`
	UserName string        `json:"userName"`
	Email    string        `json:"email"`
	UserType model.SubRole `json:"userType"`
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, staff, len(staff))
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.ClinicSignupRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	staff, err := h.service.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	userType := staff.SubRole()
	httputil.RespondWithSuccess(c, http.StatusCreated, titleCase(string(userType))+" created successfully", createdStaff{
		ID:       staff.ID,
		UserName: staff.UserName,
		Email:    staff.Email,
		UserType: userType,
	})
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateStaffRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	staff, err := h.service.UpdateStaff(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "User updated successfully", staff)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "User deleted successfully")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
