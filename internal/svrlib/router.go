// Package svrlib provides common server routing utilities
package svrlib

import (
	"net/http"
	"strings"

	"github.com/jrschumacher/gpc-ping/internal/config"
)

// Router wraps HTTP routing functionality with configuration
type Router struct {
	Config    *config.Config
	Mux       *http.ServeMux
	BaseRoute string
}

// NewRouter creates a new Router with the given mux, base route, and configuration.
// A trailing slash on baseRoute is dropped.
func NewRouter(mux *http.ServeMux, baseRoute string, cfg *config.Config) *Router {
	return &Router{cfg, mux, strings.TrimRight(baseRoute, "/")}
}

// Path joins p onto the base route.
func (r *Router) Path(p string) string {
	return r.BaseRoute + "/" + strings.TrimLeft(p, "/")
}

// Handle registers h for method requests to p below the base route.
func (r *Router) Handle(method, p string, h http.Handler) {
	r.Mux.Handle(method+" "+r.Path(p), h)
}

// HandleFunc is Handle for a handler function.
func (r *Router) HandleFunc(method, p string, h http.HandlerFunc) {
	r.Handle(method, p, h)
}
