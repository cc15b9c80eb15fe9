package mock

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauzanhilmi/travelmock/internal/models"
	"github.com/fauzanhilmi/travelmock/internal/services"
)

// instantConfig removes the simulated delay so tests run fast; failure
// and fluctuation knobs are off unless a test turns them on.
func instantConfig() services.MockConfig {
	return services.MockConfig{
		FailureRate:            0,
		ResponseDelayMin:       0,
		ResponseDelayMax:       0,
		EnableRealisticData:    true,
		EnablePriceFluctuation: false,
	}
}

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func seededOpts(seed int64) []Option {
	return []Option{WithRand(newSeededRand(seed))}
}

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func TestFailureRateOneFailsEveryCall(t *testing.T) {
	store := services.NewConfigStore(instantConfig())
	svc, err := NewFlightService(store, seededOpts(1)...)
	require.NoError(t, err)

	cfg := store.Load()
	cfg.FailureRate = 1.0
	store.Store(cfg)

	params := models.FlightSearchParams{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-10-01"}
	for i := 0; i < 20; i++ {
		resp := svc.Search(context.Background(), params)
		assert.False(t, resp.Success)
		assert.Nil(t, resp.Data)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestFailureRateZeroAlwaysSucceeds(t *testing.T) {
	store := services.NewConfigStore(instantConfig())
	svc, err := NewFlightService(store, seededOpts(2)...)
	require.NoError(t, err)

	params := models.FlightSearchParams{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-10-01"}
	for i := 0; i < 20; i++ {
		resp := svc.Search(context.Background(), params)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Error)
	}
}

func TestResponseTimeReflectsSimulatedDelay(t *testing.T) {
	cfg := instantConfig()
	cfg.ResponseDelayMin = 30 * time.Millisecond
	cfg.ResponseDelayMax = 30 * time.Millisecond
	store := services.NewConfigStore(cfg)

	svc, err := NewHotelService(store, seededOpts(3)...)
	require.NoError(t, err)

	resp := svc.CheckAvailability(context.Background(), "htl-nyc-001", "2025-10-01", "2025-10-04")
	assert.GreaterOrEqual(t, resp.ResponseTimeMs, int64(30))
	assert.Less(t, resp.ResponseTimeMs, int64(2000))
}

func TestEnvelopeHasExactlyOneOfDataAndError(t *testing.T) {
	cfg := instantConfig()
	cfg.FailureRate = 0.5
	store := services.NewConfigStore(cfg)

	svc, err := NewActivityService(store, seededOpts(4)...)
	require.NoError(t, err)

	params := models.ActivitySearchParams{Destination: "Paris", StartDate: "2025-10-01"}
	for i := 0; i < 100; i++ {
		resp := svc.Search(context.Background(), params)
		if resp.Success {
			assert.NotNil(t, resp.Data)
			assert.Empty(t, resp.Error)
		} else {
			assert.Nil(t, resp.Data)
			assert.NotEmpty(t, resp.Error)
		}
		assert.Equal(t, models.SourceAPI, resp.FallbackUsed)
	}
}

func TestFailureInjectionRateConverges(t *testing.T) {
	cfg := instantConfig()
	cfg.FailureRate = 0.3
	store := services.NewConfigStore(cfg)

	svc, err := NewFlightService(store, seededOpts(5)...)
	require.NoError(t, err)

	params := models.FlightSearchParams{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-10-01"}
	failures := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if !svc.Search(context.Background(), params).Success {
			failures++
		}
	}
	rate := float64(failures) / trials
	assert.InDelta(t, 0.3, rate, 0.05)
}
