package services

import (
	"sync"
	"time"
)

// MockConfig holds the tunable knobs shared by every mock service.
type MockConfig struct {
	FailureRate            float64
	ResponseDelayMin       time.Duration
	ResponseDelayMax       time.Duration
	EnableRealisticData    bool
	EnablePriceFluctuation bool
}

func DefaultMockConfig() MockConfig {
	return MockConfig{
		FailureRate:            0.05,
		ResponseDelayMin:       100 * time.Millisecond,
		ResponseDelayMax:       400 * time.Millisecond,
		EnableRealisticData:    true,
		EnablePriceFluctuation: true,
	}
}

// ConfigStore shares one live MockConfig between the factory and every
// mock it constructed, so updates apply to in-flight instances.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg MockConfig
}

func NewConfigStore(cfg MockConfig) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

func (s *ConfigStore) Load() MockConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *ConfigStore) Store(cfg MockConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}
