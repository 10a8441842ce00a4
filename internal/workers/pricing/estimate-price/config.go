package estimateprice

import (
	"fmt"
	"time"

	"deal-advisor-workers/internal/common/config"
)

type Config struct {
	Enabled          bool
	MaxJobsActive    int
	Timeout          time.Duration
	SimulatedLatency time.Duration
	NoiseAmplitude   float64
	MinimumPrice     float64
	Seed             int64
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:          true,
		MaxJobsActive:    10,
		Timeout:          10 * time.Second,
		SimulatedLatency: 600 * time.Millisecond,
		NoiseAmplitude:   500,
		MinimumPrice:     500,
	}
}

// ConfigFromApp builds the worker config from the loaded application config.
func ConfigFromApp(cfg *config.Config) *Config {
	wcfg := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Enabled:          wcfg.Enabled,
		MaxJobsActive:    wcfg.MaxJobsActive,
		Timeout:          config.GetDuration(wcfg.Timeout),
		SimulatedLatency: config.GetDuration(cfg.Pricing.SimulatedLatency),
		NoiseAmplitude:   cfg.Pricing.NoiseAmplitude,
		MinimumPrice:     cfg.Pricing.MinimumPrice,
		Seed:             cfg.Pricing.Seed,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.SimulatedLatency < 0 {
		return fmt.Errorf("simulated latency must not be negative")
	}
	if c.NoiseAmplitude < 0 {
		return fmt.Errorf("noise amplitude must not be negative")
	}
	if c.MinimumPrice <= 0 {
		return fmt.Errorf("minimum price must be positive")
	}
	return nil
}
