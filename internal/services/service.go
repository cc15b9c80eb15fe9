package services

import (
	"context"

	"github.com/fauzanhilmi/travelmock/internal/models"
)

// One interface per travel domain. Mock and live implementations share
// these contracts so callers never branch on which tier answered.

type FlightService interface {
	Search(ctx context.Context, params models.FlightSearchParams) models.Response[[]models.FlightResult]
	GetDetails(ctx context.Context, id string) models.Response[models.FlightResult]
}

type HotelService interface {
	Search(ctx context.Context, params models.HotelSearchParams) models.Response[[]models.HotelResult]
	GetDetails(ctx context.Context, id string) models.Response[models.HotelResult]
	CheckAvailability(ctx context.Context, id, checkIn, checkOut string) models.Response[bool]
}

type ActivityService interface {
	Search(ctx context.Context, params models.ActivitySearchParams) models.Response[[]models.ActivityResult]
	GetDetails(ctx context.Context, id string) models.Response[models.ActivityResult]
}

type PaymentService interface {
	ProcessBooking(ctx context.Context, req models.BookingRequest) models.Response[models.BookingResult]
	GetBookingStatus(ctx context.Context, id string) models.Response[models.BookingResult]
	CancelBooking(ctx context.Context, id string) models.Response[bool]
}
