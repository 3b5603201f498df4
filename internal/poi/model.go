package poi

import (
	"net/http"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
)

var (
	ErrQueryRequired   = apperror.New(http.StatusBadRequest, "invalid_request", "search query is required")
	ErrDiscoveryFailed = apperror.New(http.StatusBadGateway, "discovery_failed", "point-of-interest discovery failed, please try again")
)

// Type categorizes a point of interest.
type Type string

const (
	TypeAttraction    Type = "Attraction"
	TypeRestaurant    Type = "Restaurant"
	TypeActivity      Type = "Activity"
	TypeAccommodation Type = "Accommodation"
	TypeCafe          Type = "Cafe"
	TypeOther         Type = "Other"
)

// POI is a discovered point of interest.
type POI struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Type        Type   `json:"type"`
	ImageURL    string `json:"image_url"`
	ImageHint   string `json:"image_hint"`
	Review      string `json:"review"`
}
