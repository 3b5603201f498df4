package http

import (
	"github.com/wanderplan/travel-planner-backend/internal/adjustment"
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
)

// RefreshAdjustmentsRequest carries the destination and the itinerary
// document to annotate.
type RefreshAdjustmentsRequest struct {
	Destination string             `json:"destination" binding:"required"`
	Itinerary   itinerary.Document `json:"itinerary" binding:"required"`
}

type RefreshAdjustmentsResponse struct {
	Adjustments []adjustment.Adjustment `json:"adjustments"`
	Itinerary   itinerary.Document      `json:"itinerary"`
}
