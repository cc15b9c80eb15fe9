package mock

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

type PaymentService struct {
	sim *simulator

	// Booking table, scoped to this instance. Status polls do a
	// read-modify-write, so access is serialized.
	mu       sync.Mutex
	bookings map[string]*models.BookingResult
}

func NewPaymentService(cfg *services.ConfigStore, opts ...Option) (*PaymentService, error) {
	return &PaymentService{
		sim:      newSimulator(cfg, opts...),
		bookings: make(map[string]*models.BookingResult),
	}, nil
}

func (s *PaymentService) ProcessBooking(ctx context.Context, req models.BookingRequest) models.Response[models.BookingResult] {
	start := time.Now()

	// Contract violations surface before any simulated randomness, so
	// they recur deterministically on retry.
	if err := req.Validate(); err != nil {
		return models.Fail[models.BookingResult](err.Error(), sinceMs(start))
	}

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[models.BookingResult]("payment gateway unreachable", sinceMs(start))
	}

	r := s.sim.fork()
	if msg, declined := s.methodFailure(r.Float64(), req.PaymentMethod); declined {
		return models.Fail[models.BookingResult](msg, sinceMs(start))
	}

	total := 0.0
	for _, item := range req.Items {
		total += item.Price.Amount
	}
	currency := req.Items[0].Price.Currency

	result := models.BookingResult{
		ID:               uuid.NewString(),
		ConfirmationCode: confirmationCode(r),
		Status:           models.BookingConfirmed,
		PaymentStatus:    models.PaymentPaid,
		Items:            req.Items,
		Total:            models.NewPrice(total, currency),
		Customer:         req.Customer,
		CreatedAt:        s.sim.now(),
	}

	// Bank transfers always clear asynchronously; a small slice of other
	// bookings also lands in manual review.
	if req.PaymentMethod.Type == models.PaymentBankTransfer || r.Float64() < 0.05 {
		result.Status = models.BookingPending
		result.PaymentStatus = models.PaymentPending
	}

	s.mu.Lock()
	stored := result
	s.bookings[result.ID] = &stored
	s.mu.Unlock()

	return models.Ok(result, sinceMs(start))
}

// GetBookingStatus resolves pending bookings as a side effect of being
// polled: 90% confirm, 10% fail. Confirmed and cancelled never revert.
func (s *PaymentService) GetBookingStatus(ctx context.Context, id string) models.Response[models.BookingResult] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[models.BookingResult]("payment gateway unreachable", sinceMs(start))
	}

	resolve := s.sim.float64() < 0.90

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Fail[models.BookingResult]("booking not found: "+id, sinceMs(start))
	}

	if b.Status == models.BookingPending {
		if resolve {
			b.Status = models.BookingConfirmed
			b.PaymentStatus = models.PaymentPaid
		} else {
			b.Status = models.BookingFailed
			b.PaymentStatus = models.PaymentFailed
		}
	}

	return models.Ok(*b, sinceMs(start))
}

func (s *PaymentService) CancelBooking(ctx context.Context, id string) models.Response[bool] {
	start := time.Now()

	s.sim.wait()
	if s.sim.injectFailure() {
		return models.Fail[bool]("payment gateway unreachable", sinceMs(start))
	}

	feeDraw := s.sim.float64()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Fail[bool]("booking not found: "+id, sinceMs(start))
	}
	if b.Status == models.BookingCancelled {
		return models.Fail[bool]("booking has already been cancelled", sinceMs(start))
	}
	if s.sim.now().Sub(b.CreatedAt) > 24*time.Hour && feeDraw < 0.30 {
		return models.Fail[bool]("cancellation window exceeded: a cancellation fee applies, contact support", sinceMs(start))
	}

	b.Status = models.BookingCancelled
	b.PaymentStatus = models.PaymentPending // refund in flight

	return models.Ok(true, sinceMs(start))
}

// methodFailure layers payment-method-specific declines on top of the
// base failure rate. Card numbers ending 00 always decline and 50
// declines half the time, so callers can script failure paths.
func (s *PaymentService) methodFailure(draw float64, m models.PaymentMethod) (string, bool) {
	switch m.Type {
	case models.PaymentCard:
		if strings.HasSuffix(m.Last4, "00") {
			return "card declined by issuing bank", true
		}
		if strings.HasSuffix(m.Last4, "50") {
			if draw < 0.50 {
				return "insufficient funds on card", true
			}
			return "", false
		}
		if draw < 0.02 {
			return "card authorization failed, try another card", true
		}
	case models.PaymentPayPal:
		if draw < 0.03 {
			return "paypal account could not be verified", true
		}
	case models.PaymentBankTransfer:
		if draw < 0.01 {
			return "bank transfer rejected by receiving institution", true
		}
	case models.PaymentDigitalWallet:
		if draw < 0.015 {
			return "digital wallet session expired, re-authenticate", true
		}
	}
	return "", false
}

// confirmationCode produces the fixed LLL-DDD-LLL shape, e.g. KQX204BTF.
func confirmationCode(r *rand.Rand) string {
	b := make([]byte, 0, 9)
	for i := 0; i < 3; i++ {
		b = append(b, upperLetters[r.Intn(len(upperLetters))])
	}
	for i := 0; i < 3; i++ {
		b = append(b, digits[r.Intn(len(digits))])
	}
	for i := 0; i < 3; i++ {
		b = append(b, upperLetters[r.Intn(len(upperLetters))])
	}
	return string(b)
}

var _ services.PaymentService = (*PaymentService)(nil)
