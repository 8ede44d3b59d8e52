package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/appointment"
	"github.com/wizardXds/medicare/pkg/httputil"
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
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.CreateAppointment)
		appointments.PATCH("/:id", h.UpdateAppointment)
	}
}

// ListAppointments requires exactly one of patientId or doctorId.
func (h *Handler) ListAppointments(c *gin.Context) {
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
		appointments, err := h.service.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}

	doctorID, err := strconv.Atoi(doctorParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "doctorId must be an integer"})
		return
	}
	appointments, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	appt, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	appt, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	var patch model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	appt, err := h.service.Update(c.Request.Context(), id, &patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
