// Package live holds the real-provider variants of the service
// contracts. They are configuration-selectable placeholders: each
// operation answers with a failure envelope until an integration is
// wired in, so the factory's accessor shape never changes.
package live

import (
	"context"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

const errNotConfigured = "live provider integration is not configured"

type FlightService struct{}

func NewFlightService() *FlightService { return &FlightService{} }

func (s *FlightService) Search(ctx context.Context, params models.FlightSearchParams) models.Response[[]models.FlightResult] {
	return models.Fail[[]models.FlightResult](errNotConfigured, 0)
}

func (s *FlightService) GetDetails(ctx context.Context, id string) models.Response[models.FlightResult] {
	return models.Fail[models.FlightResult](errNotConfigured, 0)
}

type HotelService struct{}

func NewHotelService() *HotelService { return &HotelService{} }

func (s *HotelService) Search(ctx context.Context, params models.HotelSearchParams) models.Response[[]models.HotelResult] {
	return models.Fail[[]models.HotelResult](errNotConfigured, 0)
}

func (s *HotelService) GetDetails(ctx context.Context, id string) models.Response[models.HotelResult] {
	return models.Fail[models.HotelResult](errNotConfigured, 0)
}

func (s *HotelService) CheckAvailability(ctx context.Context, id, checkIn, checkOut string) models.Response[bool] {
	return models.Fail[bool](errNotConfigured, 0)
}

type ActivityService struct{}

func NewActivityService() *ActivityService { return &ActivityService{} }

func (s *ActivityService) Search(ctx context.Context, params models.ActivitySearchParams) models.Response[[]models.ActivityResult] {
	return models.Fail[[]models.ActivityResult](errNotConfigured, 0)
}

func (s *ActivityService) GetDetails(ctx context.Context, id string) models.Response[models.ActivityResult] {
	return models.Fail[models.ActivityResult](errNotConfigured, 0)
}

type PaymentService struct{}

func NewPaymentService() *PaymentService { return &PaymentService{} }

func (s *PaymentService) ProcessBooking(ctx context.Context, req models.BookingRequest) models.Response[models.BookingResult] {
	return models.Fail[models.BookingResult](errNotConfigured, 0)
}

func (s *PaymentService) GetBookingStatus(ctx context.Context, id string) models.Response[models.BookingResult] {
	return models.Fail[models.BookingResult](errNotConfigured, 0)
}

func (s *PaymentService) CancelBooking(ctx context.Context, id string) models.Response[bool] {
	return models.Fail[bool](errNotConfigured, 0)
}

var (
	_ services.FlightService   = (*FlightService)(nil)
	_ services.HotelService    = (*HotelService)(nil)
	_ services.ActivityService = (*ActivityService)(nil)
	_ services.PaymentService  = (*PaymentService)(nil)
)
