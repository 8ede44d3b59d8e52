package prescription

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/prescription"
	"github.com/wizardXds/medicare/pkg/httputil"
)

type Handler struct {
	service *prescription.Service
}

func NewHandler(service *prescription.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	prescriptions := r.Group("/prescriptions")
	{
		prescriptions.GET("", h.ListPrescriptions)
		prescriptions.GET("/:id", h.GetPrescription)
		prescriptions.POST("", h.CreatePrescription)
		prescriptions.PATCH("/:id", h.UpdatePrescription)
	}
}

// ListPrescriptions requires exactly one of patientId or doctorId.
func (h *Handler) ListPrescriptions(c *gin.Context) {
	patientParam := c.Query("patientId")
	doctorParam := c.Query("doctorId")

	if (patientParam == "") == (doctorParam == "") {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{
			Error: "either patientId or doctorId query parameter is required",
		})
		return
	}

	if patientParam != "" {
		patientID, err := strconv.Atoi(patientParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "patientId must be an integer"})
			return
		}
		prescriptions, err := h.service.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, prescriptions)
		return
	}

	doctorID, err := strconv.Atoi(doctorParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "doctorId must be an integer"})
		return
	}
	prescriptions, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (h *Handler) GetPrescription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid prescription id"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
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

func (h *Handler) UpdatePrescription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid prescription id"})
		return
	}

	var patch model.UpdatePrescriptionRequest
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
