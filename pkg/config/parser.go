package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saturnines/litmus-go/pkg/errors"
)

type ValidationError struct {
	Field   string
	Message string
}

// Returns the string representation of validation error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator interface {
	Validate(cfg *ClientConfig) []ValidationError
}

// DefaultValueSetter fills in unset fields
type DefaultValueSetter interface {
	SetDefaults(cfg *ClientConfig)
}

// VariableExpander defines the interface for expanding variables
type VariableExpander interface {
	Expand(data []byte) []byte
}

// EnvExpander expands ${VAR} references using the process environment
type EnvExpander struct{}

// Expand expands environment variables with the given data
func (e *EnvExpander) Expand(data []byte) []byte {
	return []byte(os.Expand(string(data), os.Getenv))
}

// Loader reads a ClientConfig: expand, unmarshal, apply LITMUS_* overrides,
// set defaults, then validate.
type Loader struct {
	expander      VariableExpander
	validators    []Validator
	defaultSetter DefaultValueSetter
	lookupEnv     func(string) (string, bool)
	overrides     []func(*ClientConfig)
}

// NewLoader creates a Loader with the given components
func NewLoader(
	expander VariableExpander,
	defaultSetter DefaultValueSetter,
	validators ...Validator,
) *Loader {
	return &Loader{
		expander:      expander,
		validators:    validators,
		defaultSetter: defaultSetter,
		lookupEnv:     os.LookupEnv,
	}
}

// NewDefaultLoader wires the standard expander, defaults and validators.
func NewDefaultLoader() *Loader {
	return NewLoader(
		&EnvExpander{},
		&ClientDefaults{},
		&RequiredFieldValidator{},
		&HostValidator{},
		&LogLevelValidator{},
		&TimeoutValidator{},
	)
}

// WithOverride registers fn to run after environment overrides and before
// defaults, e.g. to apply command-line flags.
func (l *Loader) WithOverride(fn func(*ClientConfig)) *Loader {
	l.overrides = append(l.overrides, fn)
	return l
}

// Load reads a config from a YAML file. An empty path skips the file and
// builds the config from the environment alone.
func (l *Loader) Load(path string) (*ClientConfig, error) {
	if path == "" {
		return l.Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "read config file")
	}
	return l.Parse(data)
}

// Parse parses a YAML config
func (l *Loader) Parse(data []byte) (*ClientConfig, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "parse YAML")
	}

	l.applyEnv(&cfg)
	for _, fn := range l.overrides {
		fn(&cfg)
	}

	if l.defaultSetter != nil {
		l.defaultSetter.SetDefaults(&cfg)
	}

	if err := Validate(&cfg, l.validators...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) applyEnv(cfg *ClientConfig) {
	if l.lookupEnv == nil {
		return
	}
	if v, ok := l.lookupEnv(EnvHost); ok && v != "" {
		cfg.Host = v
	}
	if v, ok := l.lookupEnv(EnvToken); ok && v != "" {
		cfg.Token = v
	}
}

// Validate runs validators against cfg and joins every failure into one
// ErrValidation error.
func Validate(cfg *ClientConfig, validators ...Validator) error {
	var all []ValidationError
	for _, v := range validators {
		all = append(all, v.Validate(cfg)...)
	}
	if len(all) == 0 {
		return nil
	}

	msgs := make([]string, len(all))
	for i, e := range all {
		msgs[i] = e.Error()
	}
	return errors.WrapError(fmt.Errorf("%s", strings.Join(msgs, "; ")), errors.ErrValidation, "invalid config")
}

// ClientDefaults implements DefaultValueSetter for ClientConfig
type ClientDefaults struct{}

// SetDefaults sets default values for ClientConfig
func (d *ClientDefaults) SetDefaults(cfg *ClientConfig) {
	cfg.Host = strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = LogLevel(strings.ToLower(string(cfg.LogLevel)))
}

// RequiredFieldValidator validates required fields
type RequiredFieldValidator struct{}

func (v *RequiredFieldValidator) Validate(cfg *ClientConfig) []ValidationError {
	var errs []ValidationError
	if cfg.Host == "" {
		errs = append(errs, ValidationError{Field: "host", Message: fmt.Sprintf("is required (or set %s)", EnvHost)})
	}
	return errs
}

// HostValidator checks the host is a usable URL. A host without a scheme
// is accepted for in-cluster service names.
type HostValidator struct{}

func (v *HostValidator) Validate(cfg *ClientConfig) []ValidationError {
	if cfg.Host == "" {
		return nil
	}
	raw := cfg.Host
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return []ValidationError{{Field: "host", Message: fmt.Sprintf("invalid URL: %v", err)}}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []ValidationError{{Field: "host", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}}
	}
	if u.Host == "" {
		return []ValidationError{{Field: "host", Message: "missing host name"}}
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return []ValidationError{{Field: "host", Message: "must not contain a query or fragment"}}
	}
	return nil
}

// LogLevelValidator validates log_level
type LogLevelValidator struct{}

func (v *LogLevelValidator) Validate(cfg *ClientConfig) []ValidationError {
	switch cfg.LogLevel {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return []ValidationError{{Field: "log_level", Message: fmt.Sprintf("unknown level: %s", cfg.LogLevel)}}
	}
}

// TimeoutValidator rejects negative timeouts
type TimeoutValidator struct{}

func (v *TimeoutValidator) Validate(cfg *ClientConfig) []ValidationError {
	if cfg.Timeout < 0 {
		return []ValidationError{{Field: "timeout", Message: "must not be negative"}}
	}
	return nil
}
