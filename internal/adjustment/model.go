package adjustment

import (
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
)

// Type classifies a disruption event.
type Type string

const (
	TypeWeather    Type = "weather"
	TypeDelay      Type = "delay"
	TypeClosure    Type = "closure"
	TypeLastMinute Type = "last_minute"
)

// Severity grades a disruption event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Adjustment is a disruption event with suggested alternatives. It is
// ephemeral: recomputed on each refresh cycle, never persisted.
type Adjustment struct {
	Type               Type                    `json:"type"`
	Severity           Severity                `json:"severity"`
	AffectedActivities []string                `json:"affected_activities"`
	Alternatives       []itinerary.Alternative `json:"alternative_suggestions"`
	CostImpact         float64                 `json:"impact_on_cost,omitempty"`
	ScheduleImpact     string                  `json:"impact_on_schedule,omitempty"`
}

// Weather is a point-in-time snapshot plus a short forecast for a
// destination.
type Weather struct {
	Location    string        `json:"location"`
	Temperature int           `json:"temperature"` // °C
	Condition   string        `json:"condition"`
	Humidity    int           `json:"humidity"`   // %
	WindSpeed   int           `json:"wind_speed"` // km/h
	Forecast    []ForecastDay `json:"forecast"`
}

type ForecastDay struct {
	Date          string `json:"date"`
	Temperature   int    `json:"temperature"`
	Condition     string `json:"condition"`
	Precipitation int    `json:"precipitation"` // mm
}
