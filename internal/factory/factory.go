// Package factory resolves which concrete implementation of each travel
// service interface callers get, based on runtime configuration.
package factory

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/fauzanhilmi/travelmock/internal/services"
	"github.com/fauzanhilmi/travelmock/internal/services/live"
	"github.com/fauzanhilmi/travelmock/internal/services/mock"
)

type Config struct {
	UseMock bool
	Phase   int
	Mock    services.MockConfig
}

// PhasePreset maps the coarse development-phase selector to a MockConfig.
// Phase 1 is frictionless, phase 3 approximates a flaky provider.
func PhasePreset(phase int) services.MockConfig {
	switch phase {
	case 1:
		return services.MockConfig{
			FailureRate:            0,
			ResponseDelayMin:       50 * time.Millisecond,
			ResponseDelayMax:       200 * time.Millisecond,
			EnableRealisticData:    true,
			EnablePriceFluctuation: true,
		}
	case 3:
		return services.MockConfig{
			FailureRate:            0.10,
			ResponseDelayMin:       200 * time.Millisecond,
			ResponseDelayMax:       800 * time.Millisecond,
			EnableRealisticData:    true,
			EnablePriceFluctuation: true,
		}
	default:
		return services.DefaultMockConfig()
	}
}

// FromEnv reads the configuration surface once: the mock/real toggle,
// the phase selector, and per-knob overrides on top of the preset.
func FromEnv() Config {
	phase := getEnvInt("MOCK_PHASE", 2)
	mc := PhasePreset(phase)

	mc.FailureRate = getEnvFloat("MOCK_FAILURE_RATE", mc.FailureRate)
	mc.ResponseDelayMin = getEnvDuration("MOCK_DELAY_MIN", mc.ResponseDelayMin)
	mc.ResponseDelayMax = getEnvDuration("MOCK_DELAY_MAX", mc.ResponseDelayMax)
	mc.EnableRealisticData = getEnvBool("MOCK_REALISTIC_DATA", mc.EnableRealisticData)
	mc.EnablePriceFluctuation = getEnvBool("MOCK_PRICE_FLUCTUATION", mc.EnablePriceFluctuation)

	return Config{
		UseMock: getEnvBool("USE_MOCK_SERVICES", true),
		Phase:   phase,
		Mock:    mc,
	}
}

// ServiceFactory hands out one service per domain. It is an explicit
// object constructed at process start and passed to whatever builds the
// route handlers; the package-level Default exists for convenience and
// test helpers only.
type ServiceFactory struct {
	store      *services.ConfigStore
	flights    services.FlightService
	hotels     services.HotelService
	activities services.ActivityService
	payments   services.PaymentService
}

func New(cfg Config, opts ...mock.Option) (*ServiceFactory, error) {
	f := &ServiceFactory{store: services.NewConfigStore(cfg.Mock)}

	if !cfg.UseMock {
		f.flights = live.NewFlightService()
		f.hotels = live.NewHotelService()
		f.activities = live.NewActivityService()
		f.payments = live.NewPaymentService()
		return f, nil
	}

	var err error
	if f.flights, err = mock.NewFlightService(f.store, opts...); err != nil {
		return nil, err
	}
	if f.hotels, err = mock.NewHotelService(f.store, opts...); err != nil {
		return nil, err
	}
	if f.activities, err = mock.NewActivityService(f.store, opts...); err != nil {
		return nil, err
	}
	if f.payments, err = mock.NewPaymentService(f.store, opts...); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *ServiceFactory) Flights() services.FlightService      { return f.flights }
func (f *ServiceFactory) Hotels() services.HotelService        { return f.hotels }
func (f *ServiceFactory) Activities() services.ActivityService { return f.activities }
func (f *ServiceFactory) Payments() services.PaymentService    { return f.payments }

// UpdateConfig swaps the live mock knobs; already-constructed services
// observe the change on their next call.
func (f *ServiceFactory) UpdateConfig(cfg services.MockConfig) {
	f.store.Store(cfg)
}

func (f *ServiceFactory) Config() services.MockConfig {
	return f.store.Load()
}

var (
	defaultMu      sync.Mutex
	defaultFactory *ServiceFactory
)

// Default lazily constructs the process-wide factory from the
// environment. Reset clears it for test isolation.
func Default() (*ServiceFactory, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFactory == nil {
		f, err := New(FromEnv())
		if err != nil {
			return nil, err
		}
		defaultFactory = f
	}
	return defaultFactory, nil
}

func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = nil
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
