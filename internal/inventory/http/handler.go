package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
)

type Handler struct {
	service inventory.Service
}

func NewHandler(service inventory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Search(c *gin.Context) {
	var query SearchInventoryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err)
		return
	}

	items, err := h.service.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = NewItemResponse(item)
	}

	c.JSON(http.StatusOK, response.NewListResponse(resp))
}
