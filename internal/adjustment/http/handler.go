package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/adjustment"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
)

type Handler struct {
	service adjustment.Service
}

func NewHandler(service adjustment.Service) *Handler {
	return &Handler{service: service}
}

// Refresh generates a fresh adjustment set for the destination and applies
// it to the submitted itinerary. Clients call this on initial load and then
// on a fixed interval while the view is active.
func (h *Handler) Refresh(c *gin.Context) {
	var body RefreshAdjustmentsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	adjustments, err := h.service.Generate(c.Request.Context(), body.Destination)
	if err != nil {
		response.Error(c, err)
		return
	}
	if adjustments == nil {
		adjustments = []adjustment.Adjustment{}
	}

	h.service.Apply(&body.Itinerary, adjustments)

	c.JSON(http.StatusOK, RefreshAdjustmentsResponse{
		Adjustments: adjustments,
		Itinerary:   body.Itinerary,
	})
}
