package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	HTTP     HTTPConfig              `mapstructure:"http"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Pricing  PricingConfig           `mapstructure:"pricing"`
	Access   AccessConfig            `mapstructure:"access"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	ConnectRetries int    `mapstructure:"connect_retries"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HTTPConfig configures the JSON API and the health/metrics endpoints.
type HTTPConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	RequestTimeout  int    `mapstructure:"request_timeout"`  // milliseconds, must stay below write_timeout
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// PricingConfig tunes the simulated market lookup.
type PricingConfig struct {
	SimulatedLatency int     `mapstructure:"simulated_latency"` // milliseconds
	NoiseAmplitude   float64 `mapstructure:"noise_amplitude"`
	Seed             int64   `mapstructure:"seed"` // 0 seeds from the clock
	MinimumPrice     float64 `mapstructure:"minimum_price"`
}

// AccessConfig controls how long a remembered access grant lives.
type AccessConfig struct {
	KeyPrefix string `mapstructure:"key_prefix"`
	TTL       int    `mapstructure:"ttl"` // seconds, 0 keeps the flag forever
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
