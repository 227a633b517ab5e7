// Package health serves liveness and version information.
package health

import (
	"net/http"

	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/httputil"
	"github.com/jrschumacher/gpc-ping/internal/svrlib"
	"github.com/jrschumacher/gpc-ping/internal/validation"
)

type HealthRouter struct {
	*svrlib.Router
}

// VersionsResponse lists the specification versions the server validates.
type VersionsResponse struct {
	Default  string               `json:"default"`
	Versions []validation.Version `json:"versions"`
}

// RegisterRoutes registers all health check routes on the given mux
func RegisterRoutes(mux *http.ServeMux, baseRoute string, cfg *config.Config) {
	router := &HealthRouter{svrlib.NewRouter(mux, baseRoute, cfg)}
	router.HandleFunc(http.MethodGet, "healthz", router.HealthzHandler)
	router.HandleFunc(http.MethodGet, "versions", router.VersionsHandler)
}

// HealthzHandler responds to /healthz requests for health checks
func (rt *HealthRouter) HealthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok\n"))
}

// VersionsHandler lists the supported specification versions.
func (rt *HealthRouter) VersionsHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteSuccess(w, VersionsResponse{
		Default:  rt.Config.DefaultSpecVersion,
		Versions: validation.Versions(),
	})
}
