package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

// Params are the free-form trip parameters fed to the generator.
type Params struct {
	CurrentLocation     string
	Destination         string
	NumberOfDays        int
	NumberOfPeople      int
	Budget              string
	AgeGroup            string
	Preferences         string
	TravelTheme         string
	Language            string
	SpecialRequirements string
}

// Generator produces a structured itinerary document for the given trip
// parameters. The real implementation calls a generative-AI service; this
// repo ships a mock that fabricates plausible documents locally.
type Generator interface {
	Generate(ctx context.Context, p Params) (*Document, error)
}

// Budget tiers accepted by the generator.
const (
	BudgetFriendly = "Budget-friendly"
	BudgetMidRange = "Mid-range"
	BudgetLuxury   = "Luxury"
)

type mockGenerator struct {
	rng random.Source
}

// NewMockGenerator returns a Generator that fabricates itinerary documents
// from fixed templates, with prices scaled by budget tier and small random
// variation drawn from rng.
func NewMockGenerator(rng random.Source) Generator {
	return &mockGenerator{rng: rng}
}

// activityTemplate pairs a day-plan slot with its base price at the
// Mid-range tier.
type activityTemplate struct {
	time            string
	description     string
	emoji           string
	travel          string
	baseCost        float64
	bookingRequired bool
	duration        string
}

var dayTemplates = [][]activityTemplate{
	{
		{"Morning", "Guided heritage walk through the old city of %s", "🏛️", "Walking", 800, true, "3 hours"},
		{"Afternoon", "Lunch and shopping at the local bazaar", "🛍️", "by Auto-rickshaw", 600, false, "2 hours"},
		{"Evening", "Sunset viewpoint and street food tour", "🌇", "by Car/Taxi", 400, false, "2 hours"},
	},
	{
		{"Morning", "Visit to the main temple complex of %s", "🛕", "by Bus", 200, false, "2 hours"},
		{"Afternoon", "Museum and art gallery circuit", "🖼️", "Walking", 500, true, "3 hours"},
		{"Evening", "Cultural dance performance", "💃", "by Car/Taxi", 1200, true, "2 hours"},
	},
	{
		{"Morning", "Outdoor activities: nature trail and birdwatching near %s", "🦜", "by Car/Taxi", 900, true, "Half day"},
		{"Afternoon", "Riverside picnic and boat ride", "🛶", "Walking", 700, false, "2 hours"},
		{"Evening", "Night market exploration", "🌃", "by Auto-rickshaw", 300, false, "2 hours"},
	},
	{
		{"Morning", "Day trip to the fort overlooking %s", "🏰", "by Bus", 1000, true, "Half day"},
		{"Afternoon", "Long walks through the botanical gardens", "🌺", "Walking", 150, false, "2 hours"},
		{"Evening", "Rooftop dinner with live music", "🎶", "by Car/Taxi", 1500, true, "3 hours"},
	},
}

func budgetMultiplier(budget string) float64 {
	switch budget {
	case BudgetFriendly:
		return 0.6
	case BudgetLuxury:
		return 2.0
	default:
		return 1.0
	}
}

func (g *mockGenerator) Generate(ctx context.Context, p Params) (*Document, error) {
	if strings.TrimSpace(p.Destination) == "" {
		return nil, ErrDestinationEmpty
	}
	if p.NumberOfDays < 1 {
		p.NumberOfDays = 1
	}
	if p.NumberOfPeople < 1 {
		p.NumberOfPeople = 1
	}

	mult := budgetMultiplier(p.Budget)
	days := make([]DayPlan, 0, p.NumberOfDays)

	for i := 0; i < p.NumberOfDays; i++ {
		tmpl := dayTemplates[i%len(dayTemplates)]
		day := DayPlan{
			Day:          i + 1,
			Title:        fmt.Sprintf("Day %d in %s", i+1, p.Destination),
			MapImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s-day%d/800/400", strings.ToLower(p.Destination), i+1),
			MapImageHint: fmt.Sprintf("%s map", p.Destination),
		}

		for _, t := range tmpl {
			desc := t.description
			if strings.Contains(desc, "%s") {
				desc = fmt.Sprintf(desc, p.Destination)
			}
			// Small per-trip variation so repeated generations differ.
			jitter := 1.0 + float64(g.rng.IntN(21)-10)/100.0
			day.Activities = append(day.Activities, Activity{
				Time:             t.time,
				Description:      desc,
				Emoji:            t.emoji,
				TravelSuggestion: t.travel,
				EstimatedCost:    roundRupees(t.baseCost * mult * jitter),
				BookingRequired:  t.bookingRequired,
				Duration:         t.duration,
			})
		}

		day.Accommodation = &Accommodation{
			Name:            fmt.Sprintf("%s Residency", p.Destination),
			Type:            accommodationType(p.Budget),
			EstimatedCost:   roundRupees(3500 * mult),
			BookingRequired: true,
			Amenities:       []string{"WiFi", "Breakfast"},
		}
		day.Food = &Food{
			Recommendation: "Regional thali at a well-reviewed local restaurant",
			EstimatedCost:  roundRupees(600 * mult),
			Cuisine:        "Local",
		}
		day.Transportation = &Transportation{
			Mode:            "Car/Taxi",
			EstimatedCost:   roundRupees(1000 * mult),
			BookingRequired: false,
		}

		days = append(days, day)
	}

	doc := &Document{
		Days:           days,
		TotalCost:      AggregateCosts(days, p.NumberOfPeople),
		BookingSummary: SummarizeBookings(days),
		Recommendations: Recommendations{
			BestTimeToVisit:       "October to March, when the weather is pleasant",
			WeatherConsiderations: "Carry light cotton clothing and an umbrella during monsoon months",
			CulturalNotes:         "Dress modestly when visiting religious sites",
			SafetyTips:            "Use prepaid taxis from official stands and keep digital copies of documents",
		},
	}
	return doc, nil
}

func accommodationType(budget string) string {
	switch budget {
	case BudgetFriendly:
		return "guesthouse"
	case BudgetLuxury:
		return "heritage hotel"
	default:
		return "hotel"
	}
}

func roundRupees(v float64) float64 {
	if v < 0 {
		return 0
	}
	return float64(int(v/10) * 10)
}
