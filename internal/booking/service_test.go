package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/travel-planner-backend/internal/inventory"
)

func newTestService() Service {
	catalog := inventory.NewService(inventory.NewMemoryRepository(inventory.DefaultSeed()))
	return NewService(catalog)
}

func TestConfirm_SingleLine(t *testing.T) {
	svc := newTestService()

	result, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryHotel, Name: "taj palace", Date: "2024-01-15", Quantity: 1},
		},
		Method: MethodUPI,
	})
	require.NoError(t, err)

	require.Len(t, result.Bookings, 1)
	b := result.Bookings[0]
	assert.Equal(t, "Taj Palace Hotel", b.Name)
	assert.Equal(t, inventory.StatusConfirmed, b.Status)
	assert.Equal(t, 15000.0, b.Price)
	assert.True(t, strings.HasPrefix(b.ConfirmationNumber, "CONF-"))
	assert.NotEmpty(t, b.ID)

	assert.Equal(t, 15000.0, result.Payment.Amount)
	assert.Equal(t, PaymentCompleted, result.Payment.Status)
	assert.Equal(t, MethodUPI, result.Payment.Method)
	assert.Equal(t, PaymentGateway, result.Payment.Gateway)
	assert.True(t, strings.HasPrefix(result.Payment.TransactionID, "TXN-"))
}

func TestConfirm_QuantityMultipliesPrice(t *testing.T) {
	svc := newTestService()

	result, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryFlight, Name: "Air India", Date: "2024-01-15", Quantity: 3},
		},
		Method: MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, 25500.0, result.Bookings[0].Price)
	assert.Equal(t, 25500.0, result.Payment.Amount)
}

func TestConfirm_ZeroQuantityTreatedAsOne(t *testing.T) {
	svc := newTestService()

	result, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryTrain, Name: "Rajdhani", Date: "2024-01-15"},
		},
		Method: MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, result.Bookings[0].Price)
}

func TestConfirm_SumsPaymentAcrossLines(t *testing.T) {
	svc := newTestService()

	result, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryHotel, Name: "Taj", Date: "2024-01-15", Quantity: 1},
			{Category: inventory.CategoryTrain, Name: "Rajdhani", Date: "2024-01-15", Quantity: 1},
		},
		Method: MethodNetbanking,
	})
	require.NoError(t, err)
	require.Len(t, result.Bookings, 2)
	assert.Equal(t, 17500.0, result.Payment.Amount)
}

func TestConfirm_UnmatchedLineAbortsEverything(t *testing.T) {
	svc := newTestService()

	// First line matches, second cannot.
	result, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryHotel, Name: "Taj", Date: "2024-01-15", Quantity: 1},
			{Category: inventory.CategoryHotel, Name: "Nonexistent Resort", Date: "2024-01-15", Quantity: 1},
		},
		Method: MethodCard,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nonexistent Resort")
}

func TestConfirm_DateMismatchIsUnavailable(t *testing.T) {
	svc := newTestService()

	_, err := svc.Confirm(context.Background(), Request{
		Items: []LineItem{
			{Category: inventory.CategoryHotel, Name: "Taj", Date: "2024-01-16", Quantity: 1},
		},
		Method: MethodCard,
	})
	assert.Error(t, err)
}

func TestConfirm_EmptyCart(t *testing.T) {
	svc := newTestService()

	_, err := svc.Confirm(context.Background(), Request{Method: MethodCard})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCancel_RefundsEightyPercent(t *testing.T) {
	svc := newTestService()

	refund, err := svc.Cancel(context.Background(), "hotel-001", "change of plans")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, refund)
}

func TestCancel_UnknownBooking(t *testing.T) {
	svc := newTestService()

	_, err := svc.Cancel(context.Background(), "no-such-id", "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
