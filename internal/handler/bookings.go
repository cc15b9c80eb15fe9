package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/ratelimit"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

// Booking responses are never cached: the status transitions are driven
// by the calls themselves.
type BookingHandler struct {
	svc     services.PaymentService
	limiter *ratelimit.DomainLimiter
}

func NewBookingHandler(svc services.PaymentService, rl *ratelimit.DomainLimiter) *BookingHandler {
	return &BookingHandler{svc: svc, limiter: rl}
}

func (h *BookingHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := h.limiter.Wait(ctx, "payments"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	return c.JSON(http.StatusOK, h.svc.ProcessBooking(ctx, req))
}

func (h *BookingHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.limiter.Wait(ctx, "payments"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	return c.JSON(http.StatusOK, h.svc.GetBookingStatus(ctx, c.Param("id")))
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.limiter.Wait(ctx, "payments"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	return c.JSON(http.StatusOK, h.svc.CancelBooking(ctx, c.Param("id")))
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
