package http

import (
	"github.com/wanderplan/travel-planner-backend/internal/itinerary"
)

// GenerateItineraryRequest defines the trip parameters accepted by the
// generation endpoint.
type GenerateItineraryRequest struct {
	CurrentLocation     string `json:"current_location" binding:"required"`
	Destination         string `json:"destination" binding:"required"`
	NumberOfDays        int    `json:"number_of_days" binding:"required,min=1,max=30"`
	NumberOfPeople      int    `json:"number_of_people" binding:"required,min=1,max=50"`
	Budget              string `json:"budget" binding:"required,oneof=Budget-friendly Mid-range Luxury"`
	AgeGroup            string `json:"age_group" binding:"required"`
	Preferences         string `json:"preferences" binding:"required"`
	TravelTheme         string `json:"travel_theme" binding:"omitempty,oneof=heritage nightlife adventure relaxation food culture nature spiritual"`
	Language            string `json:"language"`
	SpecialRequirements string `json:"special_requirements"`
}

func (r *GenerateItineraryRequest) ToParams() itinerary.Params {
	return itinerary.Params{
		CurrentLocation:     r.CurrentLocation,
		Destination:         r.Destination,
		NumberOfDays:        r.NumberOfDays,
		NumberOfPeople:      r.NumberOfPeople,
		Budget:              r.Budget,
		AgeGroup:            r.AgeGroup,
		Preferences:         r.Preferences,
		TravelTheme:         r.TravelTheme,
		Language:            r.Language,
		SpecialRequirements: r.SpecialRequirements,
	}
}
