package middleware

import (
	"fmt"
	"net/http"

	"github.com/jrschumacher/gpc-ping/internal/httputil"
)

// TokenSizeLimit rejects requests whose Authorization header exceeds limit bytes.
func TokenSizeLimit(limit int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n := len(r.Header.Get("Authorization")); n > limit {
				httputil.WriteError(w, http.StatusRequestHeaderFieldsTooLarge,
					"Authorization header too large", fmt.Errorf("%d bytes exceeds the %d byte limit", n, limit))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
