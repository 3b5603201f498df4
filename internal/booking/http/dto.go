package http

import (
	"github.com/wanderplan/travel-planner-backend/internal/booking"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
)

type LineItemBody struct {
	Category        string `json:"category" binding:"required,oneof=hotel flight train bus activity restaurant"`
	Name            string `json:"name" binding:"required"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

type CustomerBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type ConfirmBookingRequest struct {
	Items    []LineItemBody `json:"items" binding:"required,min=1,dive"`
	Customer CustomerBody   `json:"customer" binding:"required"`
	Method   string         `json:"payment_method" binding:"required,oneof=card upi netbanking wallet"`
}

func (r *ConfirmBookingRequest) ToRequest() booking.Request {
	items := make([]booking.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = booking.LineItem{
			Category:        inventory.Category(it.Category),
			Name:            it.Name,
			Date:            it.Date,
			Time:            it.Time,
			Quantity:        it.Quantity,
			SpecialRequests: it.SpecialRequests,
		}
	}
	return booking.Request{
		Items: items,
		Customer: booking.Customer{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
		Method: booking.PaymentMethod(r.Method),
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ConfirmedBookingResponse struct {
	ID                 string  `json:"id"`
	Category           string  `json:"category"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	Date               string  `json:"date"`
	Time               string  `json:"time,omitempty"`
	Price              float64 `json:"price"`
	Currency           string  `json:"currency"`
	Status             string  `json:"status"`
	ConfirmationNumber string  `json:"confirmation_number"`
	BookingReference   string  `json:"booking_reference,omitempty"`
}

func NewConfirmedBookingResponse(b *booking.ConfirmedBooking) ConfirmedBookingResponse {
	return ConfirmedBookingResponse{
		ID:                 b.ID,
		Category:           string(b.Category),
		Name:               b.Name,
		Location:           b.Location,
		Date:               b.Date,
		Time:               b.Time,
		Price:              b.Price,
		Currency:           b.Currency,
		Status:             string(b.Status),
		ConfirmationNumber: b.ConfirmationNumber,
		BookingReference:   b.BookingReference,
	}
}

type PaymentResponse struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Gateway       string  `json:"gateway"`
}

func NewPaymentResponse(p booking.Payment) PaymentResponse {
	return PaymentResponse{
		Amount:        p.Amount,
		Currency:      p.Currency,
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		Gateway:       p.Gateway,
	}
}

type ConfirmBookingResponse struct {
	Bookings         []ConfirmedBookingResponse `json:"bookings"`
	Payment          PaymentResponse            `json:"payment"`
	ConfirmationText string                     `json:"confirmation_text"`
}

// FailedBookingResponse mirrors the all-or-nothing contract: zero bookings
// and a failed zero-amount payment accompany the error.
type FailedBookingResponse struct {
	Error    string                     `json:"error"`
	Code     string                     `json:"code"`
	Bookings []ConfirmedBookingResponse `json:"bookings"`
	Payment  PaymentResponse            `json:"payment"`
}

type CancelBookingResponse struct {
	RefundAmount float64 `json:"refund_amount"`
	Currency     string  `json:"currency"`
}
