package ping

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/httputil"
	"github.com/jrschumacher/gpc-ping/internal/testutil"
)

func newServer(t *testing.T, exposeClaims bool) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:             config.EnvTest,
		BasePath:           "/gpc-ping",
		DefaultSpecVersion: "v1.6.0",
		MaxTokenBytes:      16384,
		ExposeClaims:       exposeClaims,
	}
	mux := http.NewServeMux()
	RegisterRoutes(mux, cfg.BasePath, cfg)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url, authorization string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	return out
}

func TestPing_NoToken(t *testing.T) {
	server := newServer(t, true)

	resp := get(t, server.URL+"/gpc-ping/STU3/1/gpconnect/Patient", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}

	body := decodeBody[httputil.MessageResponse](t, resp)
	if body.Message != "Ping successful, but no JWT token provided" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestPing_ValidToken(t *testing.T) {
	server := newServer(t, true)
	token := testutil.UnsignedToken(t, testutil.Payload("v1.6.0"))

	resp := get(t, server.URL+"/gpc-ping/STU3/1/gpconnect/Patient?version=v1.6.0", "Bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeBody[Response](t, resp)
	if !body.Valid {
		t.Errorf("expected valid token, messages %q", body.Messages)
	}
	if body.Message != "Ping successful, JWT token decoded and logged" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Path != "STU3/1/gpconnect/Patient" {
		t.Errorf("path = %q", body.Path)
	}
	if body.Version != "v1.6.0" || body.Header.Algorithm != "none" {
		t.Errorf("unexpected body %+v", body)
	}
	if body.Claims["sub"] != testutil.PractitionerID {
		t.Errorf("claims = %v", body.Claims)
	}
	if body.ValidTo == nil || body.ValidTo.Unix() != testutil.Expiry {
		t.Errorf("validTo = %v", body.ValidTo)
	}
	if body.IssuedAt == nil || body.IssuedAt.Unix() != testutil.IssuedAt {
		t.Errorf("issuedAt = %v", body.IssuedAt)
	}
	if len(body.MissingClaims) != 0 {
		t.Errorf("missingClaims = %v", body.MissingClaims)
	}
}

func TestPing_DefaultVersionAndFailures(t *testing.T) {
	server := newServer(t, false)

	payload := testutil.Payload("v1.6.0")
	payload["reason_for_request"] = "secondaryuses"
	delete(payload, "requested_record")
	token := testutil.UnsignedToken(t, payload)

	resp := get(t, server.URL+"/gpc-ping/any", "bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeBody[Response](t, resp)
	if body.Valid {
		t.Error("expected invalid token")
	}
	if body.Version != "v1.6.0" {
		t.Errorf("version = %q", body.Version)
	}
	if body.Claims != nil {
		t.Errorf("claims should not be exposed, got %v", body.Claims)
	}
	if len(body.MissingClaims) != 1 || body.MissingClaims[0] != "requested_record" {
		t.Errorf("missingClaims = %v", body.MissingClaims)
	}

	found := false
	for _, m := range body.Messages {
		if m == "Invalid 'reason_for_request': 'secondaryuses'" {
			found = true
		}
	}
	if !found {
		t.Errorf("messages = %q", body.Messages)
	}
}

func TestPing_BadRequests(t *testing.T) {
	server := newServer(t, true)
	token := testutil.UnsignedToken(t, testutil.Payload("v1.6.0"))

	tests := []struct {
		name    string
		query   string
		auth    string
		message string
		err     string
	}{
		{"signed token", "", "Bearer " + token + "signature", "Invalid JWT token format", "Token should not be signed"},
		{"two segments", "", "Bearer abc.def", "Invalid JWT token format", "Token has invalid format. Expected 3 segments"},
		{"unsupported version", "?version=v9.9.9", "Bearer " + token, "Version v9.9.9 is not supported", ""},
		{"long unsupported version", "?version=v1.6.0-snapshot-build", "Bearer " + token, "Version v1.6.0-snapshot-build is not supported", ""},
		{"oversized version", "?version=" + strings.Repeat("v", 40), "Bearer " + token, "Version " + strings.Repeat("v", 40) + " is not supported", ""},
		{"non ascii version", "?version=v1.6.0%C3%A9", "Bearer " + token, "Version v1.6.0é is not supported", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, server.URL+"/gpc-ping/path"+tt.query, tt.auth)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", resp.StatusCode)
			}

			body := decodeBody[httputil.ErrorResponse](t, resp)
			if body.Message != tt.message {
				t.Errorf("message = %q, want %q", body.Message, tt.message)
			}
			if tt.err != "" && body.Error != tt.err {
				t.Errorf("error = %q, want %q", body.Error, tt.err)
			}
		})
	}
}

func TestPing_TokenTooLarge(t *testing.T) {
	cfg := &config.Config{BasePath: "/gpc-ping", DefaultSpecVersion: "v1.6.0", MaxTokenBytes: 64}
	mux := http.NewServeMux()
	RegisterRoutes(mux, cfg.BasePath, cfg)

	req := httptest.NewRequest(http.MethodGet, "/gpc-ping/x", nil)
	req.Header.Set("Authorization", "Bearer "+strings.Repeat("a", 100))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestHeaderFieldsTooLarge {
		t.Errorf("Expected status 431, got %d", rec.Code)
	}
}

func TestPing_NoVersionWithoutDefault(t *testing.T) {
	cfg := &config.Config{BasePath: "/gpc-ping", MaxTokenBytes: 16384}
	mux := http.NewServeMux()
	RegisterRoutes(mux, cfg.BasePath, cfg)

	token := testutil.UnsignedToken(t, testutil.Payload("v1.6.0"))
	req := httptest.NewRequest(http.MethodGet, "/gpc-ping/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid query parameters") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
