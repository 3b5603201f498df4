package adjustment

import (
	"context"
	"strings"

	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

// Rule thresholds. These are stand-in policy constants; a production
// version would replace the rule bodies with a real disruption feed while
// keeping the same output contract.
const (
	heavyPrecipitationMM = 10
	extremeHeatCelsius   = 35
	closureProbability   = 0.3
)

type Service interface {
	// Generate evaluates the disruption rules against a fresh weather
	// snapshot for the destination. Rules fire independently; more than
	// one adjustment may be returned.
	Generate(ctx context.Context, destination string) ([]Adjustment, error)

	// Apply rebuilds each day's annotation list from the given
	// adjustments. A day is annotated when any affected-activity label is
	// a case-insensitive substring of one of its activity descriptions.
	Apply(doc *itinerary.Document, adjustments []Adjustment)
}

type service struct {
	weather Provider
	rng     random.Source
}

func NewService(weather Provider, rng random.Source) Service {
	return &service{weather: weather, rng: rng}
}

func (s *service) Generate(ctx context.Context, destination string) ([]Adjustment, error) {
	weather, err := s.weather.Current(ctx, destination)
	if err != nil {
		return nil, err
	}

	var adjustments []Adjustment

	if weather.Condition == "Rainy" || maxPrecipitation(weather.Forecast) > heavyPrecipitationMM {
		adjustments = append(adjustments, rainAdjustment())
	}

	if weather.Temperature > extremeHeatCelsius {
		adjustments = append(adjustments, heatAdjustment())
	}

	if s.rng.Float64() > 1-closureProbability {
		adjustments = append(adjustments, closureAdjustment())
	}

	return adjustments, nil
}

func maxPrecipitation(forecast []ForecastDay) int {
	max := 0
	for _, day := range forecast {
		if day.Precipitation > max {
			max = day.Precipitation
		}
	}
	return max
}

func rainAdjustment() Adjustment {
	return Adjustment{
		Type:               TypeWeather,
		Severity:           SeverityMedium,
		AffectedActivities: []string{"Outdoor activities", "Beach visits", "Trekking"},
		Alternatives: []itinerary.Alternative{
			{Activity: "Visit indoor museums and galleries", Reason: "Weather protection", EstimatedCost: 500},
			{Activity: "Shopping at covered markets", Reason: "Stay dry while exploring", EstimatedCost: 1000},
			{Activity: "Spa and wellness center", Reason: "Relaxing indoor activity", EstimatedCost: 2000, BookingRequired: true},
		},
		CostImpact:     500,
		ScheduleImpact: "Some outdoor activities may need to be rescheduled",
	}
}

func heatAdjustment() Adjustment {
	return Adjustment{
		Type:               TypeWeather,
		Severity:           SeverityHigh,
		AffectedActivities: []string{"Midday outdoor activities", "Long walks"},
		Alternatives: []itinerary.Alternative{
			{Activity: "Early morning or evening activities", Reason: "Avoid peak heat hours"},
			{Activity: "Air-conditioned venues", Reason: "Stay cool and comfortable", EstimatedCost: 300},
		},
		CostImpact:     300,
		ScheduleImpact: "Activities shifted to cooler hours",
	}
}

func closureAdjustment() Adjustment {
	return Adjustment{
		Type:               TypeClosure,
		Severity:           SeverityMedium,
		AffectedActivities: []string{"Popular tourist attractions"},
		Alternatives: []itinerary.Alternative{
			{Activity: "Alternative cultural sites", Reason: "Original venue temporarily closed", EstimatedCost: 400},
			{Activity: "Local market exploration", Reason: "Flexible alternative activity", EstimatedCost: 200},
		},
		CostImpact:     200,
		ScheduleImpact: "Minor schedule adjustments needed",
	}
}

func (s *service) Apply(doc *itinerary.Document, adjustments []Adjustment) {
	for i := range doc.Days {
		day := &doc.Days[i]
		// Replace-on-refresh: stale annotations from the previous cycle
		// are dropped, never accumulated.
		day.Adjustments = nil
		for _, adj := range adjustments {
			if dayAffected(day, adj.AffectedActivities) {
				day.Adjustments = append(day.Adjustments, itinerary.Annotation{
					Type:           string(adj.Type),
					Severity:       string(adj.Severity),
					Message:        alertMessage(adj.Type),
					Alternatives:   adj.Alternatives,
					CostImpact:     adj.CostImpact,
					ScheduleImpact: adj.ScheduleImpact,
				})
			}
		}
	}
}

// dayAffected reports whether any affected-activity label is a
// case-insensitive substring of any activity description on the day.
// Substring matching can over- or under-match; this is a known
// approximation.
func dayAffected(day *itinerary.DayPlan, labels []string) bool {
	for _, label := range labels {
		needle := strings.ToLower(label)
		for _, act := range day.Activities {
			if strings.Contains(strings.ToLower(act.Description), needle) {
				return true
			}
		}
	}
	return false
}

func alertMessage(t Type) string {
	name := strings.ReplaceAll(string(t), "_", " ")
	if name == "" {
		return "Alert"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " alert"
}
