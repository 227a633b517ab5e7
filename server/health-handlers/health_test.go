package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/gpc-ping/internal/config"
)

func TestHealthRoutes(t *testing.T) {
	cfg := &config.Config{AppEnv: config.EnvTest, DefaultSpecVersion: "v1.5.0"}
	mux := http.NewServeMux()
	RegisterRoutes(mux, "/_meta", cfg)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_meta/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok\n" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_meta/versions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("versions status = %d", rec.Code)
	}

	var body VersionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Default != "v1.5.0" || len(body.Versions) != 4 || body.Versions[0] != "v0.7.4" {
		t.Errorf("body = %+v", body)
	}
}
