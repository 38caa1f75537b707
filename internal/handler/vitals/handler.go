package vitals

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/vitals"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *vitals.Service
}

func NewHandler(service *vitals.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	v := r.Group("/vitals")
	{
		v.POST("", h.RecordVitals)
		v.GET("/patient/:patientId", h.ListPatientVitals)
		v.GET("/appointment/:appointmentId", h.GetAppointmentVitals)
	}
}

func (h *Handler) RecordVitals(c *gin.Context) {
	var req model.RecordVitalsRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	rec, err := h.service.Record(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Vitals recorded successfully", rec)
}

func (h *Handler) ListPatientVitals(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "patientId")
	if !ok {
		return
	}

	list, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, list)
}

func (h *Handler) GetAppointmentVitals(c *gin.Context) {
	appointmentID, ok := handler.ParamID(c, "appointmentId")
	if !ok {
		return
	}

	rec, err := h.service.GetByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, rec)
}
