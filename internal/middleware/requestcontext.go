package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
)

// RequestIDHeader carries the request id on both the request and response.
const RequestIDHeader = "X-Request-ID"

// RequestContext holds per request values extracted before the handler runs.
type RequestContext struct {
	ID string
	// Token is the Authorization header value with any Bearer prefix removed.
	Token    string
	HasToken bool
}

type contextKey string

const requestContextKey contextKey = "request"

// RequestContextMiddleware assigns a request id, reusing a well formed
// X-Request-ID from the caller, and extracts the bearer token.
func RequestContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		rc := &RequestContext{ID: id}
		if auth := r.Header.Get("Authorization"); strings.TrimSpace(auth) != "" {
			rc.Token = jwtutil.StripBearer(auth)
			rc.HasToken = true
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestContextKey, rc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestContext returns the RequestContext stored by RequestContextMiddleware.
func GetRequestContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey).(*RequestContext)
	return rc, ok
}

// WithRequestContext stores rc in ctx. Used by tests and callers that build
// requests without the middleware.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}
