package auth

import (
	"net/http"
)

// Handler defines the interface for auth handlers
type Handler interface {
	ApplyAuth(req *http.Request) error
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func(req *http.Request) error

// ApplyAuth calls f(req)
func (f HandlerFunc) ApplyAuth(req *http.Request) error {
	return f(req)
}

// Apply runs h against req, treating a nil handler as no auth
func Apply(h Handler, req *http.Request) error {
	if h == nil {
		return nil
	}
	return h.ApplyAuth(req)
}

// StaticToken is a Handler for a single bearer token
type StaticToken string

// ApplyAuth adds the token as a Bearer Authorization header when non-empty
func (t StaticToken) ApplyAuth(req *http.Request) error {
	SetBearer(req, string(t))
	return nil
}
