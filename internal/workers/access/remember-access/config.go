package rememberaccess

import (
	"fmt"
	"time"

	"deal-advisor-workers/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	KeyPrefix     string
	TTL           time.Duration // zero keeps the flag until it is forgotten
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       5 * time.Second,
		KeyPrefix:     "access:granted:",
	}
}

func ConfigFromApp(cfg *config.Config) *Config {
	wcfg := config.GetWorkerConfig(cfg, TaskType)
	return &Config{
		Enabled:       wcfg.Enabled,
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       config.GetDuration(wcfg.Timeout),
		KeyPrefix:     cfg.Access.KeyPrefix,
		TTL:           time.Duration(cfg.Access.TTL) * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.KeyPrefix == "" {
		return fmt.Errorf("key prefix is required")
	}
	if c.TTL < 0 {
		return fmt.Errorf("ttl must not be negative")
	}
	return nil
}
