package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/saturnines/litmus-go/pkg/errors"
)

// maxErrorMessage caps how much of a non-JSON error body ends up in a ClientError.
const maxErrorMessage = 512

// HTTPDoer is a minimal interface for HTTP clients
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RoundTrip sends req and reads the whole body. Failures to send or to
// read the body are returned as ErrTransport client errors; the status
// code is not inspected.
func RoundTrip(doer HTTPDoer, req *http.Request, logger *zap.Logger) (*Response, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	url := redactURL(req)
	start := time.Now()

	resp, err := doer.Do(req)
	if err != nil {
		logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, &errors.ClientError{Kind: errors.ErrTransport, Method: req.Method, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.ClientError{
			Kind:       errors.ErrTransport,
			Method:     req.Method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	logger.Debug("request complete",
		zap.String("method", req.Method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// errorBody is the error envelope returned by the auth server.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"errorDescription"`
	Message          string `json:"message"`
	Code             string `json:"code"`
}

// StatusError builds the ErrHTTPStatus error for a non-2xx response,
// filling Code and Message from a structured error body when present.
func StatusError(req *http.Request, resp *Response) *errors.ClientError {
	ce := &errors.ClientError{
		Kind:       errors.ErrHTTPStatus,
		Method:     req.Method,
		URL:        redactURL(req),
		StatusCode: resp.StatusCode,
	}

	var eb errorBody
	if err := json.Unmarshal(resp.Body, &eb); err == nil {
		ce.Code = firstNonEmpty(eb.Error, eb.Code)
		ce.Message = firstNonEmpty(eb.ErrorDescription, eb.Message)
		return ce
	}

	msg := strings.TrimSpace(string(resp.Body))
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	ce.Message = msg
	return ce
}

// DecodeJSON unmarshals a response body into out. An empty body leaves
// out untouched.
func DecodeJSON(req *http.Request, resp *Response, out interface{}) error {
	if out == nil || len(strings.TrimSpace(string(resp.Body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &errors.ClientError{
			Kind:       errors.ErrDecode,
			Method:     req.Method,
			URL:        redactURL(req),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}
	return nil
}

// redactURL drops userinfo so credentials never reach logs or errors.
func redactURL(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	return req.URL.Redacted()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
