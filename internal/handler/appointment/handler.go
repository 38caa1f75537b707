package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/appointment"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.BookAppointment)
		appointments.GET("/doctor/:doctorId", h.ListDoctorAppointments)
		appointments.GET("/doctor/:doctorId/today", h.ListTodayAppointments)
		appointments.GET("/patient/:patientId", h.ListPatientAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	apt, err := h.service.Book(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Appointment booked successfully", apt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	apt, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, apt)
}

func (h *Handler) ListDoctorAppointments(c *gin.Context) {
	doctorID, ok := handler.ParamID(c, "doctorId")
	if !ok {
		return
	}

	apts, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, apts)
}

func (h *Handler) ListTodayAppointments(c *gin.Context) {
	doctorID, ok := handler.ParamID(c, "doctorId")
	if !ok {
		return
	}

	apts, err := h.service.ListToday(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, apts)
}

func (h *Handler) ListPatientAppointments(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "patientId")
	if !ok {
		return
	}

	apts, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, apts)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	apt, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Appointment updated", apt)
}

// CancelAppointment keeps the record and marks it cancelled.
func (h *Handler) CancelAppointment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	apt, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Appointment cancelled", apt)
}
