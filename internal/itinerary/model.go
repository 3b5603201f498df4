package itinerary

import (
	"net/http"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
)

var (
	ErrGenerationFailed = apperror.New(http.StatusBadGateway, "generation_failed", "itinerary generation failed, please try again")
	ErrDestinationEmpty = apperror.New(http.StatusBadRequest, "invalid_request", "destination is required")
)

// Document is the structured itinerary payload produced by the generator
// and threaded through booking, adjustments and sharing.
type Document struct {
	Days            []DayPlan       `json:"itinerary"`
	TotalCost       CostBreakdown   `json:"total_cost_breakdown"`
	BookingSummary  BookingSummary  `json:"booking_summary"`
	Recommendations Recommendations `json:"recommendations"`
}

// DayPlan is the plan for a single day of the trip.
type DayPlan struct {
	Day            int             `json:"day"`
	Title          string          `json:"title"`
	Activities     []Activity      `json:"activities"`
	Accommodation  *Accommodation  `json:"accommodation,omitempty"`
	Food           *Food           `json:"food,omitempty"`
	Transportation *Transportation `json:"transportation,omitempty"`
	MapImageURL    string          `json:"map_image_url,omitempty"`
	MapImageHint   string          `json:"map_image_hint,omitempty"`

	// Adjustments holds the disruption annotations for this day. It is
	// rebuilt on every refresh cycle, never accumulated across cycles.
	Adjustments []Annotation `json:"adjustments,omitempty"`
}

type Activity struct {
	Time             string  `json:"time"`
	Description      string  `json:"description"`
	Emoji            string  `json:"emoji,omitempty"`
	TravelSuggestion string  `json:"travel_suggestion,omitempty"`
	Source           string  `json:"source,omitempty"`
	EstimatedCost    float64 `json:"estimated_cost,omitempty"`
	BookingRequired  bool    `json:"booking_required,omitempty"`
	Duration         string  `json:"duration,omitempty"`
}

type Accommodation struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	EstimatedCost   float64  `json:"estimated_cost"`
	BookingRequired bool     `json:"booking_required"`
	Amenities       []string `json:"amenities,omitempty"`
}

type Food struct {
	Recommendation string  `json:"recommendation"`
	EstimatedCost  float64 `json:"estimated_cost"`
	Cuisine        string  `json:"cuisine,omitempty"`
	SpecialNotes   string  `json:"special_notes,omitempty"`
}

type Transportation struct {
	Mode            string  `json:"mode"`
	EstimatedCost   float64 `json:"estimated_cost"`
	Duration        string  `json:"duration,omitempty"`
	BookingRequired bool    `json:"booking_required"`
}

// CostBreakdown aggregates per-category costs into per-person and
// per-group totals. All amounts are in INR.
type CostBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Miscellaneous  float64 `json:"miscellaneous"`
	TotalPerPerson float64 `json:"total_per_person"`
	TotalForGroup  float64 `json:"total_for_group"`
}

// BookingSummary splits the itinerary's bookable items into those needing
// advance booking and those bookable on the spot.
type BookingSummary struct {
	AdvanceBookingRequired  []string `json:"advance_booking_required"`
	InstantBookingAvailable []string `json:"instant_booking_available"`
	EstimatedSavings        float64  `json:"estimated_savings,omitempty"`
}

type Recommendations struct {
	BestTimeToVisit       string `json:"best_time_to_visit"`
	WeatherConsiderations string `json:"weather_considerations,omitempty"`
	CulturalNotes         string `json:"cultural_notes,omitempty"`
	SafetyTips            string `json:"safety_tips,omitempty"`
}

// Annotation is a disruption notice attached to a day plan by the
// adjustment generator.
type Annotation struct {
	Type           string        `json:"type"`
	Severity       string        `json:"severity"`
	Message        string        `json:"message"`
	Alternatives   []Alternative `json:"alternatives"`
	CostImpact     float64       `json:"impact_on_cost,omitempty"`
	ScheduleImpact string        `json:"impact_on_schedule,omitempty"`
}

// Alternative is a suggested replacement activity.
type Alternative struct {
	Activity        string  `json:"activity"`
	Reason          string  `json:"reason"`
	EstimatedCost   float64 `json:"estimated_cost,omitempty"`
	BookingRequired bool    `json:"booking_required,omitempty"`
}
