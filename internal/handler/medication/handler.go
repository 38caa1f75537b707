package medication

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/medication"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *medication.Service
}

func NewHandler(service *medication.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/medication-logs")
	{
		logs.POST("", h.LogAdministration)
		logs.GET("/patient/:patientId", h.ListPatientLogs)
	}
}

// LogAdministration records who gave the dose. An anonymous caller in
// permissive mode leaves administeredBy empty.
func (h *Handler) LogAdministration(c *gin.Context) {
	var req model.CreateMedicationLogRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	entry, err := h.service.Log(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Medication administration logged", entry)
}

func (h *Handler) ListPatientLogs(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "patientId")
	if !ok {
		return
	}

	logs, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, logs)
}
