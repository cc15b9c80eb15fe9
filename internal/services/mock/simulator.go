package mock

import (
	"math/rand"
	"sync"
	"time"

	"github.com/fauzanhilmi/travelmock/internal/services"
)

// Option configures a mock service, mainly so tests can pin the random
// source and the clock.
type Option func(*simulator)

func WithRand(r *rand.Rand) Option {
	return func(s *simulator) { s.rnd = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *simulator) { s.now = now }
}

// simulator implements the call protocol shared by every mock operation:
// sleep a uniform delay, then decide between injected failure and real
// work. All randomness flows through its source so a seeded rand makes a
// whole service deterministic.
type simulator struct {
	cfg *services.ConfigStore

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func newSimulator(cfg *services.ConfigStore, opts ...Option) *simulator {
	s := &simulator{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// wait blocks for a uniform duration in [DelayMin, DelayMax]. An invoked
// mock call always resolves; callers own their timeouts.
func (s *simulator) wait() {
	cfg := s.cfg.Load()
	d := cfg.ResponseDelayMin
	if span := cfg.ResponseDelayMax - cfg.ResponseDelayMin; span > 0 {
		d += time.Duration(s.float64() * float64(span))
	}
	if d > 0 {
		time.Sleep(d)
	}
}

func (s *simulator) injectFailure() bool {
	return s.float64() < s.cfg.Load().FailureRate
}

// realistic reports whether curated catalogs should be consulted; when
// off, every lookup synthesizes generic data instead.
func (s *simulator) realistic() bool {
	return s.cfg.Load().EnableRealisticData
}

func (s *simulator) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// fork hands out an independent source seeded from the main one, so a
// single operation can draw freely without holding the lock.
func (s *simulator) fork() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rnd.Int63()))
}

// fluctuate perturbs a price by ±10% when fluctuation is enabled.
func (s *simulator) fluctuate(r *rand.Rand, v float64) float64 {
	if !s.cfg.Load().EnablePriceFluctuation {
		return v
	}
	return v * (0.9 + 0.2*r.Float64())
}

func sinceMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

func randToken(r *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}
