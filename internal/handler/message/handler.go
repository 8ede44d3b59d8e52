package message

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/service/message"
	"github.com/wizardXds/medicare/pkg/httputil"
)

type Handler struct {
	service *message.Service
}

func NewHandler(service *message.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.GET("", h.ListMessages)
		messages.POST("", h.CreateMessage)
		messages.PATCH("/:id/read", h.MarkAsRead)
	}
}

func (h *Handler) ListMessages(c *gin.Context) {
	userParam := c.Query("userId")
	if userParam == "" {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "userId query parameter is required"})
		return
	}
	userID, err := strconv.Atoi(userParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "userId must be an integer"})
		return
	}

	messages, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindingError(c, err)
		return
	}

	msg, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid message id"})
		return
	}

	msg, err := h.service.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
