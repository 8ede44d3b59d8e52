package hospital

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/hospital"
	"github.com/wizardXds/medicare/pkg/httputil"
)

type Handler struct {
	service *hospital.Service
}

func NewHandler(service *hospital.Service) *Handler {
	return &Handler{service: service}
}

// Routes are registered by the router directly so the hospital list can
// sit behind the response cache.

func (h *Handler) ListHospitals(c *gin.Context) {
	hospitals, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

func (h *Handler) GetHospital(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid hospital id"})
		return
	}

	hosp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, hosp)
}

func (h *Handler) CreateHospital(c *gin.Context) {
	var req model.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	hosp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hosp)
}

func (h *Handler) UpdateHospital(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid hospital id"})
		return
	}

	var patch model.UpdateHospitalRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	hosp, err := h.service.Update(c.Request.Context(), id, &patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, hosp)
}
