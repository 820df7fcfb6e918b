package config

import "time"

// Environment variables that override the file.
const (
	EnvHost  = "LITMUS_HOST"
	EnvToken = "LITMUS_TOKEN"
)

// ClientConfig is the on-disk configuration of a control-plane client.
type ClientConfig struct {
	Host      string        `yaml:"host"`                 // Required: control plane URL, e.g. http://litmus.example.com:9091
	Token     string        `yaml:"token,omitempty"`      // Bearer token; may come from LITMUS_TOKEN
	Timeout   time.Duration `yaml:"timeout,omitempty"`    // Per-request timeout, e.g. "30s"
	UserAgent string        `yaml:"user_agent,omitempty"` // User-Agent header
	LogLevel  LogLevel      `yaml:"log_level,omitempty"`  // debug, info, warn or error
	Metrics   MetricsConfig `yaml:"metrics,omitempty"`    // Prometheus instrumentation
}

// MetricsConfig toggles request instrumentation.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogLevel names a zap level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "litmusctl"
	DefaultLogLevel  = LogLevelInfo
)
