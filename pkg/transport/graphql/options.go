package graphql

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/saturnines/litmus-go/pkg/transport/rest"
)

// Option configures the Executor.
type Option func(*Executor)

// WithHTTPDoer swaps the underlying HTTPDoer.
func WithHTTPDoer(doer rest.HTTPDoer) Option {
	return func(e *Executor) {
		if doer != nil {
			e.doer = doer
		}
	}
}

// WithTimeout sets a timeout on the HTTP client (if it's an *http.Client).
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		if httpClient, ok := e.doer.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

// WithHeader adds a header to every GraphQL request.
func WithHeader(key, value string) Option {
	return func(e *Executor) {
		e.headers[key] = value
	}
}

// WithHeaders adds multiple headers to every GraphQL request.
func WithHeaders(headers map[string]string) Option {
	return func(e *Executor) {
		for k, v := range headers {
			e.headers[k] = v
		}
	}
}

// WithUserAgent sets the User-Agent header for requests.
func WithUserAgent(userAgent string) Option {
	return WithHeader("User-Agent", userAgent)
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// ApplyOptions applies Option functions in order.
func (e *Executor) ApplyOptions(opts ...Option) {
	for _, opt := range opts {
		opt(e)
	}
}
