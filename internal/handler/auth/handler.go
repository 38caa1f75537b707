package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	authsvc "github.com/healthone/clinic-api/internal/service/auth"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	svc  *authsvc.Service
	auth *middleware.AuthMiddleware
}

func NewHandler(svc *authsvc.Service, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{svc: svc, auth: auth}
}

// authResponse extends the envelope with the issued token and account.
type authResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    model.UserSummary `json:"user"`
}

// RegisterPublicRoutes mounts the routes that issue tokens.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup/patient", h.SignupPatient)
		auth.POST("/signup/clinic", h.SignupClinic)
		auth.POST("/signup/admin", h.SignupAdmin)
		auth.POST("/login", h.Login)
	}
}

// RegisterRoutes mounts the routes that act on the presented token.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth", h.auth.RequireIdentity())
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func (h *Handler) SignupPatient(c *gin.Context) {
	var req model.PatientSignupRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.svc.SignupPatient(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondWithAuth(c, http.StatusCreated, "Patient registered successfully", result)
}

func (h *Handler) SignupClinic(c *gin.Context) {
	var req model.ClinicSignupRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.svc.SignupClinic(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondWithAuth(c, http.StatusCreated, "Clinic registered successfully", result)
}

func (h *Handler) SignupAdmin(c *gin.Context) {
	var req model.AdminSignupRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.svc.SignupAdmin(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondWithAuth(c, http.StatusCreated, "Admin registered successfully", result)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	respondWithAuth(c, http.StatusOK, "Login successful", result)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.ClaimsFrom(c)); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "Logged out successfully")
}

func (h *Handler) Me(c *gin.Context) {
	account, err := h.svc.Me(c.Request.Context(), *middleware.IdentityFrom(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, account)
}

func respondWithAuth(c *gin.Context, status int, message string, result *model.AuthResult) {
	c.JSON(status, authResponse{
		Success: true,
		Message: message,
		Token:   result.Token,
		User:    result.User,
	})
}
