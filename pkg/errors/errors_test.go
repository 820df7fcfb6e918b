package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestClientErrorKinds(t *testing.T) {
	kinds := []error{ErrTransport, ErrHTTPStatus, ErrDecode, ErrGraphQL}
	for _, kind := range kinds {
		t.Run(kind.Error(), func(t *testing.T) {
			var err error = &ClientError{Kind: kind}
			assert.True(t, errors.Is(err, kind))
			for _, other := range kinds {
				if other != kind {
					assert.False(t, errors.Is(err, other), "should not match %v", other)
				}
			}
		})
	}
}

func TestClientErrorUnwrap(t *testing.T) {
	err := &ClientError{Kind: ErrTransport, Method: "GET", URL: "http://x/auth/users", Err: io.ErrUnexpectedEOF}

	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "GET http://x/auth/users")
	assert.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())
}

func TestClientErrorMessage(t *testing.T) {
	err := &ClientError{
		Kind:       ErrHTTPStatus,
		Method:     "POST",
		URL:        "http://x/auth/create_user",
		StatusCode: 400,
		Code:       "invalid_request",
		Message:    "username already exists",
	}
	assert.Equal(t,
		"HTTP status error: POST http://x/auth/create_user: HTTP 400: invalid_request: username already exists",
		err.Error())

	gql := &ClientError{Kind: ErrGraphQL, GraphQLErrors: gqlerror.List{{Message: "hub not found"}}}
	assert.Contains(t, gql.Error(), "hub not found")
}

func TestStatusCode(t *testing.T) {
	wrapped := WrapError(&ClientError{Kind: ErrHTTPStatus, StatusCode: 404}, ErrHTTPStatus, "get user")
	assert.Equal(t, 404, StatusCode(wrapped))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("host is required")
	err := WrapError(cause, ErrConfiguration, "load config")

	require.Error(t, err)
	assert.True(t, Is(err, ErrConfiguration))
	assert.True(t, Is(err, cause))
	assert.Equal(t, "configuration error: load config: host is required", err.Error())
}
