package litmus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type settings struct {
	httpClient *http.Client
	logger     *zap.Logger
	timeout    time.Duration
	userAgent  string
	registerer prometheus.Registerer
	metrics    bool
}

// Option configures a Client.
type Option func(*settings)

// WithHTTPClient uses c's transport and settings for both transports.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithLogger sets the logger used by both transports.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds every request, connection setup included.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// WithMetrics instruments the HTTP client with Prometheus collectors
// registered on reg (nil for the default registerer).
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) {
		s.metrics = true
		s.registerer = reg
	}
}
