package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmPayload(items []map[string]any) map[string]any {
	return map[string]any{
		"items": items,
		"customer": map[string]any{
			"name":    "Asha Verma",
			"email":   "asha@example.com",
			"phone":   "+91-98200-00000",
			"address": "12 MG Road, Pune",
		},
		"payment_method": "upi",
	}
}

func TestConfirmBooking_SingleHotel(t *testing.T) {
	payload := confirmPayload([]map[string]any{
		{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 1},
	})

	w := executeRequest(http.MethodPost, "/v1/bookings", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Bookings []struct {
			Name               string  `json:"name"`
			Price              float64 `json:"price"`
			Status             string  `json:"status"`
			ConfirmationNumber string  `json:"confirmation_number"`
		} `json:"bookings"`
		Payment struct {
			Amount        float64 `json:"amount"`
			Status        string  `json:"status"`
			TransactionID string  `json:"transaction_id"`
		} `json:"payment"`
		ConfirmationText string `json:"confirmation_text"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Taj Palace Hotel", resp.Bookings[0].Name)
	assert.Equal(t, 15000.0, resp.Bookings[0].Price)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
	assert.NotEmpty(t, resp.Bookings[0].ConfirmationNumber)
	assert.Equal(t, 15000.0, resp.Payment.Amount)
	assert.Equal(t, "completed", resp.Payment.Status)
	assert.NotEmpty(t, resp.Payment.TransactionID)
	assert.Contains(t, resp.ConfirmationText, "BOOKING CONFIRMATION")
}

func TestConfirmBooking_MultipleItemsSumsPayment(t *testing.T) {
	payload := confirmPayload([]map[string]any{
		{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 2},
		{"category": "train", "name": "Rajdhani", "date": "2024-01-15", "quantity": 1},
	})

	w := executeRequest(http.MethodPost, "/v1/bookings", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Bookings []struct {
			Price float64 `json:"price"`
		} `json:"bookings"`
		Payment struct {
			Amount float64 `json:"amount"`
		} `json:"payment"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, 30000.0, resp.Bookings[0].Price) // 15000 x 2
	assert.Equal(t, 2500.0, resp.Bookings[1].Price)
	assert.Equal(t, 32500.0, resp.Payment.Amount)
}

func TestConfirmBooking_UnmatchedItemAbortsWholeRequest(t *testing.T) {
	payload := confirmPayload([]map[string]any{
		{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 1},
		{"category": "hotel", "name": "Nonexistent Lodge", "date": "2024-01-15", "quantity": 1},
	})

	w := executeRequest(http.MethodPost, "/v1/bookings", payload, nil)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var resp struct {
		Error    string `json:"error"`
		Code     string `json:"code"`
		Bookings []any  `json:"bookings"`
		Payment  struct {
			Amount float64 `json:"amount"`
			Status string  `json:"status"`
		} `json:"payment"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, "item_unavailable", resp.Code)
	assert.Contains(t, resp.Error, "Nonexistent Lodge")
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, 0.0, resp.Payment.Amount)
	assert.Equal(t, "failed", resp.Payment.Status)
}

func TestConfirmBooking_ValidationFailures(t *testing.T) {
	// Missing customer contact record
	w := executeRequest(http.MethodPost, "/v1/bookings", map[string]any{
		"items": []map[string]any{
			{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 1},
		},
		"payment_method": "upi",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero quantity
	w = executeRequest(http.MethodPost, "/v1/bookings", confirmPayload([]map[string]any{
		{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 0},
	}), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown payment method
	payload := confirmPayload([]map[string]any{
		{"category": "hotel", "name": "Taj Palace", "date": "2024-01-15", "quantity": 1},
	})
	payload["payment_method"] = "cheque"
	w = executeRequest(http.MethodPost, "/v1/bookings", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBooking(t *testing.T) {
	w := executeRequest(http.MethodPost, "/v1/bookings/hotel-001/cancel",
		map[string]any{"reason": "change of plans"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		RefundAmount float64 `json:"refund_amount"`
		Currency     string  `json:"currency"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 12000.0, resp.RefundAmount) // 80% of 15000
	assert.Equal(t, "INR", resp.Currency)
}

func TestCancelBooking_UnknownID(t *testing.T) {
	w := executeRequest(http.MethodPost, "/v1/bookings/unknown-999/cancel",
		map[string]any{"reason": "change of plans"}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "booking_not_found", resp.Code)
}
