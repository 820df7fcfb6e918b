package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/saturnines/litmus-go/pkg/auth"
	"github.com/saturnines/litmus-go/pkg/errors"
	"github.com/saturnines/litmus-go/pkg/transport/rest"
)

// requestBody is the JSON body POSTed to the GraphQL endpoint.
type requestBody struct {
	Query string `json:"query"`
}

// Executor runs single GraphQL operations against a fixed endpoint.
// Each call is an independent round trip; Executor is safe for concurrent use.
type Executor struct {
	doer        rest.HTTPDoer
	endpoint    string
	headers     map[string]string
	authHandler auth.Handler
	logger      *zap.Logger

	closeOnce sync.Once
}

// NewExecutor wraps an endpoint such as "http://host/api/query".
// authHandler is consulted on every call, so a rotated token is picked up.
func NewExecutor(endpoint string, authHandler auth.Handler, opts ...Option) *Executor {
	e := &Executor{
		doer:        &http.Client{},
		endpoint:    endpoint,
		headers:     make(map[string]string),
		authHandler: authHandler,
		logger:      zap.NewNop(),
	}
	e.ApplyOptions(opts...)
	return e
}

// Endpoint returns the URL documents are POSTed to.
func (e *Executor) Endpoint() string {
	return e.endpoint
}

// Query POSTs document and returns the decoded envelope. GraphQL errors in
// a 2xx response are kept on the envelope and surface on extraction.
func (e *Executor) Query(ctx context.Context, document string) (*Envelope, error) {
	buf, err := json.Marshal(requestBody{Query: document})
	if err != nil {
		return nil, &errors.ClientError{Kind: errors.ErrEncode, Method: http.MethodPost, URL: e.endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, &errors.ClientError{Kind: errors.ErrTransport, Method: http.MethodPost, URL: e.endpoint, Err: err}
	}
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if err := auth.Apply(e.authHandler, req); err != nil {
		return nil, err
	}

	resp, err := rest.RoundTrip(e.doer, req, e.logger)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		ce := rest.StatusError(req, resp)
		if env, perr := ParseEnvelope(resp.Body); perr == nil && len(env.Errors) > 0 {
			ce.GraphQLErrors = env.Errors
			if ce.Message == "" {
				ce.Message = env.Errors[0].Message
			}
		}
		return nil, ce
	}

	env, err := ParseEnvelope(resp.Body)
	if err != nil {
		return nil, &errors.ClientError{
			Kind:       errors.ErrDecode,
			Method:     req.Method,
			URL:        e.endpoint,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}
	if len(env.Errors) > 0 {
		e.logger.Debug("graphql errors in response",
			zap.String("url", e.endpoint),
			zap.String("errors", env.Errors.Error()),
		)
	}
	return env, nil
}

// Close releases idle connections held by the underlying client.
func (e *Executor) Close() error {
	e.closeOnce.Do(func() {
		if c, ok := e.doer.(interface{ CloseIdleConnections() }); ok {
			c.CloseIdleConnections()
		}
	})
	return nil
}
