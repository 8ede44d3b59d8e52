package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/payment"
	"github.com/wizardXds/medicare/pkg/httputil"
)

type Handler struct {
	service *payment.Service
}

func NewHandler(service *payment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.PATCH("/:id", h.UpdatePayment)
	}
}

func (h *Handler) ListPayments(c *gin.Context) {
	patientParam := c.Query("patientId")
	if patientParam == "" {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "patientId query parameter is required"})
		return
	}
	patientID, err := strconv.Atoi(patientParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "patientId must be an integer"})
		return
	}

	payments, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var patch model.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
