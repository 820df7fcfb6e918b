package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Standard error kinds
var (
	ErrTransport     = errors.New("transport error")
	ErrHTTPStatus    = errors.New("HTTP status error")
	ErrEncode        = errors.New("encode error")
	ErrDecode        = errors.New("decode error")
	ErrGraphQL       = errors.New("GraphQL error")
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrPagination    = errors.New("pagination error")
)

// ClientError is returned by every transport call that fails.
// Kind is one of ErrTransport, ErrHTTPStatus, ErrDecode, ErrGraphQL, or
// ErrEncode when the request body could not be serialized.
type ClientError struct {
	Kind       error
	Method     string
	URL        string
	StatusCode int    // 0 when the request never got a response
	Code       string // server error code from a structured error body
	Message    string // server error message from a structured error body

	GraphQLErrors gqlerror.List

	Err error
}

func (e *ClientError) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("client error")
	}
	if e.Method != "" || e.URL != "" {
		fmt.Fprintf(&b, ": %s %s", e.Method, e.URL)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": HTTP %d", e.StatusCode)
	}
	switch {
	case e.Code != "" && e.Message != "":
		fmt.Fprintf(&b, ": %s: %s", e.Code, e.Message)
	case e.Message != "":
		fmt.Fprintf(&b, ": %s", e.Message)
	case e.Code != "":
		fmt.Fprintf(&b, ": %s", e.Code)
	}
	if len(e.GraphQLErrors) > 0 {
		fmt.Fprintf(&b, ": %s", e.GraphQLErrors.Error())
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is reports whether target is the error kind.
func (e *ClientError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with a standard error kind
func WrapError(err error, errType error, message string) error {
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As provides a convenience wrapper around errors.As
func As(err error, target any) bool {
	return errors.As(err, target)
}
