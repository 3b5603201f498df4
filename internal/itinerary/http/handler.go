package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
)

type Handler struct {
	generator itinerary.Generator
}

func NewHandler(generator itinerary.Generator) *Handler {
	return &Handler{generator: generator}
}

func (h *Handler) Generate(c *gin.Context) {
	var body GenerateItineraryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	doc, err := h.generator.Generate(c.Request.Context(), body.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
