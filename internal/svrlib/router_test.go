package svrlib

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterPath(t *testing.T) {
	cases := []struct {
		base, p, want string
	}{
		{"/gpc-ping", "healthz", "/gpc-ping/healthz"},
		{"/gpc-ping/", "/healthz", "/gpc-ping/healthz"},
		{"", "healthz", "/healthz"},
		{"/", "{path...}", "/{path...}"},
	}
	for _, c := range cases {
		r := NewRouter(http.NewServeMux(), c.base, nil)
		if got := r.Path(c.p); got != c.want {
			t.Errorf("Path(%q) with base %q = %q, want %q", c.p, c.base, got, c.want)
		}
	}
}

func TestRouterHandleFunc(t *testing.T) {
	r := NewRouter(http.NewServeMux(), "/api", nil)
	r.HandleFunc(http.MethodGet, "ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("GET status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ping", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d", rec.Code)
	}
}
