// Package record exposes the medical record endpoints. Records are
// append-only: there is no update route.
package record

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/record"
	"github.com/wizardXds/medicare/pkg/httputil"
)

type Handler struct {
	service *record.Service
}

func NewHandler(service *record.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/medical-records")
	{
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.POST("", h.CreateRecord)
	}
}

func (h *Handler) ListRecords(c *gin.Context) {
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

	records, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) GetRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid medical record id"})
		return
	}

	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	rec, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}
