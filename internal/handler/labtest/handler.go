package labtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/labtest"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *labtest.Service
}

func NewHandler(service *labtest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tests := r.Group("/lab-tests")
	{
		tests.POST("", h.OrderLabTest)
		tests.GET("/pending", h.ListPending)
		tests.GET("/patient/:patientId", h.ListPatientLabTests)
		tests.PUT("/:id/collect", h.CollectSample)
		tests.PUT("/:id/results", h.AddResults)
	}
}

func (h *Handler) OrderLabTest(c *gin.Context) {
	var req model.OrderLabTestRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	test, err := h.service.Order(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Lab test ordered successfully", test)
}

func (h *Handler) ListPending(c *gin.Context) {
	tests, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, tests)
}

func (h *Handler) ListPatientLabTests(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "patientId")
	if !ok {
		return
	}

	tests, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, tests)
}

func (h *Handler) CollectSample(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	test, err := h.service.CollectSample(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Sample collected", test)
}

func (h *Handler) AddResults(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.LabResultsRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	test, err := h.service.AddResults(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Results added", test)
}
