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

type ActivityHandler struct {
	svc     services.ActivityService
	cache   cache.Cache
	limiter *ratelimit.DomainLimiter
}

func NewActivityHandler(svc services.ActivityService, c cache.Cache, rl *ratelimit.DomainLimiter) *ActivityHandler {
	return &ActivityHandler{svc: svc, cache: c, limiter: rl}
}

func (h *ActivityHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var params models.ActivitySearchParams
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

	key := cache.Key("activities", params)
	if raw, ok := h.cache.Get(ctx, key); ok {
		return c.JSONBlob(http.StatusOK, raw)
	}

	if err := h.limiter.Wait(ctx, "activities"); err != nil {
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
	return c.JSON(http.StatusOK, resp)
}

func (h *ActivityHandler) Details(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.limiter.Wait(ctx, "activities"); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	resp := h.svc.GetDetails(ctx, c.Param("id"))
	return c.JSON(http.StatusOK, resp)
}
