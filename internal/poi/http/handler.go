package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
	"github.com/wanderplan/travel-planner-backend/internal/poi"
)

type Handler struct {
	service poi.Service
}

func NewHandler(service poi.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Discover(c *gin.Context) {
	query := c.Query("query")

	pois, err := h.service.Discover(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewListResponse(pois))
}
