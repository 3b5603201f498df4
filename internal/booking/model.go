package booking

import (
	"fmt"
	"net/http"

	"github.com/wanderplan/travel-planner-backend/internal/inventory"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
)

var (
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking_not_found", "booking not found")
	ErrNoItems         = apperror.New(http.StatusBadRequest, "invalid_request", "booking request contains no items")
)

// ItemUnavailable builds the all-or-nothing abort error for a line item
// with no catalog match.
func ItemUnavailable(name string) *apperror.AppError {
	return apperror.New(http.StatusConflict, "item_unavailable", fmt.Sprintf("item not available: %s", name))
}

// RefundRate is the flat cancellation-policy refund, independent of how
// close to the travel date the cancellation happens.
const RefundRate = 0.8

// PaymentGateway is the mock gateway name stamped on every payment.
const PaymentGateway = "Razorpay"

type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// LineItem is one requested booking within a request.
type LineItem struct {
	Category        inventory.Category
	Name            string
	Date            string
	Time            string
	Quantity        int
	SpecialRequests string
}

// Customer is the contact record required for submission.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Request is a transient cart of line items consumed once by Confirm.
type Request struct {
	Items    []LineItem
	Customer Customer
	Method   PaymentMethod
}

// ConfirmedBooking is derived from a matched catalog item at confirmation
// time: fresh identity, status forced to confirmed, price multiplied by
// quantity.
type ConfirmedBooking struct {
	ID                 string
	Category           inventory.Category
	Name               string
	Location           string
	Date               string
	Time               string
	Price              float64
	Currency           string
	Status             inventory.Status
	ConfirmationNumber string
	BookingReference   string
}

type Payment struct {
	Amount        float64
	Currency      string
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	Gateway       string
}

// Confirmation is the result of a fully matched booking request.
type Confirmation struct {
	Bookings []*ConfirmedBooking
	Payment  Payment
}
