package rest

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures an Invoker.
type Option func(*Invoker)

// WithHTTPDoer swaps the underlying HTTPDoer.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(inv *Invoker) {
		if doer != nil {
			inv.doer = doer
		}
	}
}

// WithTimeout sets a timeout on the HTTP client (if it's an *http.Client).
func WithTimeout(timeout time.Duration) Option {
	return func(inv *Invoker) {
		if httpClient, ok := inv.doer.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(inv *Invoker) {
		inv.headers[key] = value
	}
}

// WithUserAgent sets the User-Agent header for requests.
func WithUserAgent(userAgent string) Option {
	return WithHeader("User-Agent", userAgent)
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(inv *Invoker) {
		if logger != nil {
			inv.logger = logger
		}
	}
}
