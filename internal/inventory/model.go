package inventory

import (
	"net/http"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "item_not_found", "inventory item not found")
)

// Category classifies a bookable unit of inventory.
type Category string

const (
	CategoryHotel      Category = "hotel"
	CategoryFlight     Category = "flight"
	CategoryTrain      Category = "train"
	CategoryBus        Category = "bus"
	CategoryActivity   Category = "activity"
	CategoryRestaurant Category = "restaurant"
)

// Status is the availability state of an inventory item.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// DateLayout is the calendar-date format used throughout the catalog.
const DateLayout = "2006-01-02"

// Currency is fixed for the whole catalog.
const Currency = "INR"

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Item is a bookable unit of inventory. Items are immutable once seeded;
// booking never mutates the catalog.
type Item struct {
	ID               string
	Category         Category
	Name             string
	Location         string
	Date             string // DateLayout
	Time             string // optional, e.g. "10:30"
	Price            float64
	Currency         string
	Status           Status
	BookingReference string
	Amenities        []string
	ContactInfo      *ContactInfo
}

// Filter defines the search predicate over the catalog: exact category,
// case-insensitive location substring (empty matches everything), exact
// date. Only available items are returned.
type Filter struct {
	Category Category
	Location string
	Date     string
}
