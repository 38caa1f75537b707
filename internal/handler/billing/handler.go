package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/internal/handler"
	"github.com/healthone/clinic-api/internal/middleware"
	"github.com/healthone/clinic-api/internal/model"
	"github.com/healthone/clinic-api/internal/service/billing"
	"github.com/healthone/clinic-api/pkg/httputil"
)

type Handler struct {
	service *billing.Service
}

func NewHandler(service *billing.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bills := r.Group("/billing")
	{
		bills.POST("", h.CreateBill)
		bills.GET("/patient/:patientId", h.ListPatientBills)
		bills.PUT("/:id/payment", h.RecordPayment)
	}
}

func (h *Handler) CreateBill(c *gin.Context) {
	var req model.CreateBillingRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	bill, err := h.service.Create(c.Request.Context(), middleware.IdentityFrom(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, "Bill created successfully", bill)
}

func (h *Handler) ListPatientBills(c *gin.Context) {
	patientID, ok := handler.ParamID(c, "patientId")
	if !ok {
		return
	}

	bills, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithData(c, bills)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.PaymentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	bill, err := h.service.RecordPayment(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, "Payment recorded", bill)
}
