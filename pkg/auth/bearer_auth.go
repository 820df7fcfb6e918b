package auth

import (
	"net/http"
	"sync"
)

// SetBearer sets the Authorization header to "Bearer <token>".
// An empty token leaves the request untouched; the server decides.
func SetBearer(req *http.Request, token string) {
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// BearerAuth implements the interface for Bearer token authentication.
// The token can be rotated while the handler is shared between transports.
type BearerAuth struct {
	mu    sync.RWMutex
	token string
}

// NewBearerAuth creates a new bearer token authentication handler
func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{
		token: token,
	}
}

// Token returns the current token
func (b *BearerAuth) Token() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.token
}

// SetToken replaces the token used by subsequent requests.
// Requests already in flight keep the header they were built with.
func (b *BearerAuth) SetToken(token string) {
	b.mu.Lock()
	b.token = token
	b.mu.Unlock()
}

// ApplyAuth adds the Bearer token to the Authorization header
func (b *BearerAuth) ApplyAuth(req *http.Request) error {
	SetBearer(req, b.Token())
	return nil
}

// String returns a string representation of this auth method for testing
func (b *BearerAuth) String() string {
	// There is no need to actually put the actual token
	return "BearerAuth(token: [REDACTED])"
}
