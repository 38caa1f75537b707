package consultation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/consultation"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *consultation.Service
}

func NewHandler(service *consultation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	consultations := r.Group("/consultations")
	{
		consultations.POST("", h.StartConsultation)
		consultations.PUT("/:id", h.UpdateConsultation)
		consultations.GET("/patient/:patientId", h.ListPatientConsultations)
		consultations.GET("/appointment/:appointmentId", h.GetAppointmentConsultation)
	}
}

func (h *Handler) StartConsultation(c *gin.Context) {
	var req model.CreateConsultationRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	cons, err := h.service.Start(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Consultation started", cons)
}

func (h *Handler) UpdateConsultation(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateConsultationRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	cons, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Consultation updated", cons)
}

func (h *Handler) ListPatientConsultations(c *gin.Context) {
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

func (h *Handler) GetAppointmentConsultation(c *gin.Context) {
	appointmentID, ok := handler.ParamID(c, "appointmentId")
	if !ok {
		return
	}

	cons, err := h.service.GetByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, cons)
}
