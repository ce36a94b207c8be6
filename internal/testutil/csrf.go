package testutil

import (
	"context"
	"net/http"
)

// csrfTokenKey matches the context key gorilla/csrf uses internally, so a
// fake token can be injected without running the Protect middleware.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken puts a fake CSRF token on the request context. Handlers
// that build a viewdata.BaseVM call csrf.Token(r), which would otherwise
// come back empty in tests.
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token")
	return r.WithContext(ctx)
}

// NewAuthenticatedRequestWithCSRF creates a request carrying both a
// session user and a CSRF token, for handlers that render forms.
func NewAuthenticatedRequestWithCSRF(method, target string, user TestUser) *http.Request {
	req := NewAuthenticatedRequest(method, target, user)
	return WithCSRFToken(req)
}
