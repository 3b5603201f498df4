package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/travel-planner-backend/internal/booking"
	"github.com/wanderplan/travel-planner-backend/internal/inventory"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/apperror"
	"github.com/wanderplan/travel-planner-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Confirm(c *gin.Context) {
	var body ConfirmBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	req := body.ToRequest()
	conf, err := h.service.Confirm(c.Request.Context(), req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "item_unavailable" {
			// All-or-nothing abort: report the failed payment alongside
			// the error so clients see the settled state explicitly.
			c.JSON(appErr.Status, FailedBookingResponse{
				Error:    appErr.Message,
				Code:     appErr.Code,
				Bookings: []ConfirmedBookingResponse{},
				Payment: PaymentResponse{
					Amount:   0,
					Currency: inventory.Currency,
					Method:   string(req.Method),
					Status:   string(booking.PaymentFailed),
					Gateway:  booking.PaymentGateway,
				},
			})
			return
		}
		response.Error(c, err)
		return
	}

	bookings := make([]ConfirmedBookingResponse, len(conf.Bookings))
	for i, b := range conf.Bookings {
		bookings[i] = NewConfirmedBookingResponse(b)
	}

	c.JSON(http.StatusCreated, ConfirmBookingResponse{
		Bookings:         bookings,
		Payment:          NewPaymentResponse(conf.Payment),
		ConfirmationText: booking.ConfirmationText(conf.Bookings),
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")

	var body CancelBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	refund, err := h.service.Cancel(c.Request.Context(), id, body.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{
		RefundAmount: refund,
		Currency:     inventory.Currency,
	})
}
