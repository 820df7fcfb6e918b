package rest

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/saturnines/litmus-go/pkg/auth"
)

// Invoker executes authenticated JSON calls against a base URL.
// It keeps no per-call state and is safe for concurrent use.
type Invoker struct {
	doer    HTTPDoer
	baseURL string
	headers map[string]string
	logger  *zap.Logger

	closeOnce sync.Once
}

// NewInvoker creates an Invoker rooted at baseURL (e.g. "http://host/auth").
func NewInvoker(baseURL string, opts ...Option) *Invoker {
	inv := &Invoker{
		doer:    &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(map[string]string),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// BaseURL returns the URL every path is resolved against.
func (inv *Invoker) BaseURL() string {
	return inv.baseURL
}

// URL joins path onto the base URL.
func (inv *Invoker) URL(path string) string {
	if path == "" {
		return inv.baseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return inv.baseURL + path
}

// Do performs one call and decodes a 2xx body into out (if non-nil).
// An empty token sends no Authorization header. A nil body sends no body.
func (inv *Invoker) Do(
	ctx context.Context,
	method, path, token string,
	params map[string]string,
	body, out interface{},
) error {
	builder := NewBuilder(inv.URL(path), method, inv.headers, params, body, auth.StaticToken(token))
	req, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	resp, err := RoundTrip(inv.doer, req, inv.logger)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return StatusError(req, resp)
	}

	return DecodeJSON(req, resp, out)
}

// Close releases idle connections held by the underlying client.
// Calls after the first are no-ops; no request may be issued afterwards.
func (inv *Invoker) Close() error {
	inv.closeOnce.Do(func() {
		if c, ok := inv.doer.(interface{ CloseIdleConnections() }); ok {
			c.CloseIdleConnections()
		}
	})
	return nil
}

// Get issues a GET and decodes the response into T. T may be a struct,
// a pointer, or a slice such as []model.User.
func Get[T any](ctx context.Context, inv *Invoker, path, token string, params map[string]string) (T, error) {
	var out T
	if err := inv.Do(ctx, http.MethodGet, path, token, params, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Post issues a POST with body serialized to JSON (nil for no body) and
// decodes the response into T.
func Post[T any](ctx context.Context, inv *Invoker, path, token string, body interface{}) (T, error) {
	var out T
	if err := inv.Do(ctx, http.MethodPost, path, token, nil, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
