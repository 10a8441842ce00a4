package analyzedeal

import (
	"fmt"
	"time"

	"deal-advisor-workers/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       5 * time.Second,
	}
}

func ConfigFromApp(cfg *config.Config) *Config {
	wcfg := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Enabled:       wcfg.Enabled,
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       config.GetDuration(wcfg.Timeout),
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
