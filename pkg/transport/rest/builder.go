package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/saturnines/litmus-go/pkg/auth"
	"github.com/saturnines/litmus-go/pkg/errors"
)

// Builder builds REST HTTP requests.
type Builder struct {
	URL         string
	Method      string
	Headers     map[string]string
	QueryParams map[string]string
	Body        interface{}
	AuthHandler auth.Handler
}

// NewBuilder constructs a Builder.
// Method defaults to GET if empty.
func NewBuilder(
	url, method string,
	headers, params map[string]string,
	body interface{},
	authHandler auth.Handler,
) *Builder {
	if method == "" {
		method = http.MethodGet
	}
	return &Builder{
		URL:         url,
		Method:      method,
		Headers:     headers,
		QueryParams: params,
		Body:        body,
		AuthHandler: authHandler,
	}
}

// Build creates an HTTP request. A nil Body sends no body at all; anything
// else is serialized as JSON.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	var bodyReader io.Reader
	if b.Body != nil {
		buf, err := json.Marshal(b.Body)
		if err != nil {
			return nil, &errors.ClientError{Kind: errors.ErrEncode, Method: b.Method, URL: b.URL, Err: err}
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, b.Method, b.URL, bodyReader)
	if err != nil {
		return nil, &errors.ClientError{Kind: errors.ErrTransport, Method: b.Method, URL: b.URL, Err: err}
	}

	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Accept", "application/json")
	if b.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Empty values are sent as-is; callers filter what they do not want.
	if len(b.QueryParams) > 0 {
		q := req.URL.Query()
		for k, v := range b.QueryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	if err := auth.Apply(b.AuthHandler, req); err != nil {
		return nil, err
	}

	return req, nil
}
