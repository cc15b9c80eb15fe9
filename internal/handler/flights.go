package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fauzanhilmi/travelmock/internal/cache"
	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/ratelimit"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

type FlightHandler struct {
	svc     services.FlightService
	cache   cache.Cache
	limiter *ratelimit.DomainLimiter
}

func NewFlightHandler(svc services.FlightService, c cache.Cache, rl *ratelimit.DomainLimiter) *FlightHandler {
	return &FlightHandler{svc: svc, cache: c, limiter: rl}
}

func (h *FlightHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var params models.FlightSearchParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if err := params.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	key := cache.Key("flights", params)
	if raw, ok := h.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, raw)
	}

	if err := h.limiter.Wait(ctx, "flights"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	resp := h.svc.Search(ctx, params)
	if resp.Success {
		if raw, err := json.Marshal(resp); err == nil {
			_ = h.cache.Set(ctx, key, raw)
		}
	}
	// Simulated provider failures travel inside the envelope; only
	// transport-level problems map to non-200 statuses.
	return c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) Details(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.limiter.Wait(ctx, "flights"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	resp := h.svc.GetDetails(ctx, c.Param("id"))
	return c.JSON(http.StatusOK, resp)
}
