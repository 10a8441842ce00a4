package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml on top and lets
// environment variables override any key (database.redis.address -> DATABASE_REDIS_ADDRESS).
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	if root := findProjectRoot(); root != "" {
		v.AddConfigPath(filepath.Join(root, "configs"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile loads the first .env found walking from the working directory to the module root.
func loadEnvFile() {
	paths := []string{".env", "../.env", "../../.env", "../../../.env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
			v.Set(key, expanded)
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "deal-advisor-workers"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}
	if cfg.Camunda.ConnectRetries == 0 {
		cfg.Camunda.ConnectRetries = 5
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 10000
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15000
	}
	if cfg.HTTP.RequestTimeout == 0 {
		// 80% of write_timeout
		cfg.HTTP.RequestTimeout = cfg.HTTP.WriteTimeout * 4 / 5
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10000
	}

	if cfg.Pricing.SimulatedLatency == 0 {
		cfg.Pricing.SimulatedLatency = 600
	}
	// A negative latency in config switches the delay off.
	if cfg.Pricing.SimulatedLatency < 0 {
		cfg.Pricing.SimulatedLatency = 0
	}
	if cfg.Pricing.NoiseAmplitude == 0 {
		cfg.Pricing.NoiseAmplitude = 500
	}
	if cfg.Pricing.MinimumPrice == 0 {
		cfg.Pricing.MinimumPrice = 500
	}

	if cfg.Access.KeyPrefix == "" {
		cfg.Access.KeyPrefix = "access:granted:"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = 5
		}
		if worker.Timeout == 0 {
			worker.Timeout = 30000
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

// validateConfig reports every invalid key at once, keyed by its yaml path.
func validateConfig(cfg *Config) error {
	return validation.Errors{
		"camunda.broker_address":  validation.Validate(cfg.Camunda.BrokerAddress, validation.When(cfg.Camunda.Enabled, validation.Required)),
		"database.redis.address":  validation.Validate(cfg.Database.Redis.Address, validation.Required),
		"http.address":            validation.Validate(cfg.HTTP.Address, validation.Required),
		"http.request_timeout":    validation.Validate(cfg.HTTP.RequestTimeout, validation.Min(1), validation.Max(cfg.HTTP.WriteTimeout).Exclusive()),
		"pricing.noise_amplitude": validation.Validate(cfg.Pricing.NoiseAmplitude, validation.Min(0.0)),
		"pricing.minimum_price":   validation.Validate(cfg.Pricing.MinimumPrice, validation.Min(0.0).Exclusive()),
		"access.ttl":              validation.Validate(cfg.Access.TTL, validation.Min(0)),
		"logging.level":           validation.Validate(cfg.Logging.Level, validation.In("debug", "info", "warn", "error")),
	}.Filter()
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults.
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}
	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

// IsWorkerEnabled reports whether a worker should be started. Unlisted workers are enabled.
func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
