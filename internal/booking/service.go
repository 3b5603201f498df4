package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
)

type Service interface {
	// Confirm validates the whole cart against the catalog and settles a
	// mock payment. It is all-or-nothing: if any line item has no catalog
	// match, no bookings are returned and no payment is created.
	Confirm(ctx context.Context, req Request) (*Confirmation, error)

	// Cancel refunds a flat RefundRate share of the item's price. No
	// status transition is persisted; the catalog is never mutated.
	Cancel(ctx context.Context, bookingID, reason string) (float64, error)
}

type service struct {
	catalog inventory.Service
}

func NewService(catalog inventory.Service) Service {
	return &service{catalog: catalog}
}

// matchLine finds the first available catalog entry whose category equals
// the line's category, whose name contains the requested name
// (case-insensitive), and whose date equals the requested date.
func (s *service) matchLine(ctx context.Context, line LineItem) (*inventory.Item, error) {
	candidates, err := s.catalog.Search(ctx, inventory.Filter{
		Category: line.Category,
		Date:     line.Date,
	})
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(line.Name)
	for _, item := range candidates {
		if strings.Contains(strings.ToLower(item.Name), want) {
			return item, nil
		}
	}
	return nil, nil
}

func (s *service) Confirm(ctx context.Context, req Request) (*Confirmation, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	// Match every line before synthesizing anything, so a miss on a later
	// line can never leak bookings from earlier lines.
	matched := make([]*inventory.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := s.matchLine(ctx, line)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ItemUnavailable(line.Name)
		}
		matched = append(matched, item)
	}

	bookings := make([]*ConfirmedBooking, 0, len(matched))
	var total float64
	for i, item := range matched {
		quantity := req.Items[i].Quantity
		if quantity < 1 {
			quantity = 1
		}
		b := &ConfirmedBooking{
			ID:                 uuid.NewString(),
			Category:           item.Category,
			Name:               item.Name,
			Location:           item.Location,
			Date:               item.Date,
			Time:               item.Time,
			Price:              item.Price * float64(quantity),
			Currency:           item.Currency,
			Status:             inventory.StatusConfirmed,
			ConfirmationNumber: "CONF-" + strings.ToUpper(shortuuid.New()),
			BookingReference:   item.BookingReference,
		}
		bookings = append(bookings, b)
		total += b.Price
	}

	return &Confirmation{
		Bookings: bookings,
		Payment: Payment{
			Amount:        total,
			Currency:      inventory.Currency,
			Method:        req.Method,
			Status:        PaymentCompleted,
			TransactionID: "TXN-" + strings.ToUpper(shortuuid.New()),
			Gateway:       PaymentGateway,
		},
	}, nil
}

func (s *service) Cancel(ctx context.Context, bookingID, reason string) (float64, error) {
	item, err := s.catalog.GetByID(ctx, bookingID)
	if err != nil {
		if err == inventory.ErrNotFound {
			return 0, ErrBookingNotFound
		}
		return 0, err
	}

	return item.Price * RefundRate, nil
}
