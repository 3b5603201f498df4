package http

import (
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
)

// SearchInventoryRequest defines query parameters for catalog search.
type SearchInventoryRequest struct {
	Category string `form:"category" binding:"required,oneof=hotel flight train bus activity restaurant"`
	Location string `form:"location"`
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (r *SearchInventoryRequest) ToFilter() inventory.Filter {
	return inventory.Filter{
		Category: inventory.Category(r.Category),
		Location: r.Location,
		Date:     r.Date,
	}
}

type ContactInfoResponse struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type ItemResponse struct {
	ID               string               `json:"id"`
	Category         string               `json:"category"`
	Name             string               `json:"name"`
	Location         string               `json:"location"`
	Date             string               `json:"date"`
	Time             string               `json:"time,omitempty"`
	Price            float64              `json:"price"`
	Currency         string               `json:"currency"`
	Status           string               `json:"status"`
	BookingReference string               `json:"booking_reference,omitempty"`
	Amenities        []string             `json:"amenities,omitempty"`
	ContactInfo      *ContactInfoResponse `json:"contact_info,omitempty"`
}

func NewItemResponse(item *inventory.Item) ItemResponse {
	resp := ItemResponse{
		ID:               item.ID,
		Category:         string(item.Category),
		Name:             item.Name,
		Location:         item.Location,
		Date:             item.Date,
		Time:             item.Time,
		Price:            item.Price,
		Currency:         item.Currency,
		Status:           string(item.Status),
		BookingReference: item.BookingReference,
		Amenities:        item.Amenities,
	}
	if item.ContactInfo != nil {
		resp.ContactInfo = &ContactInfoResponse{
			Phone:   item.ContactInfo.Phone,
			Email:   item.ContactInfo.Email,
			Address: item.ContactInfo.Address,
		}
	}
	return resp
}
