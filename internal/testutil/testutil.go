// Package testutil builds GP Connect fixture tokens for tests.
package testutil

import (
	"encoding/base64"
	"testing"

	"github.com/goccy/go-json"
)

// Segment base64url encodes v as JSON without padding.
func Segment(t *testing.T, v any) string {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal token segment: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// UnsignedToken returns a compact JWT with an alg=none header and an empty
// signature segment.
func UnsignedToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	return Segment(t, map[string]string{"alg": "none", "typ": "JWT"}) + "." + Segment(t, payload) + "."
}

// TokenWithHeader is UnsignedToken with a caller supplied header.
func TokenWithHeader(t *testing.T, header map[string]string, payload map[string]any) string {
	t.Helper()
	return Segment(t, header) + "." + Segment(t, payload) + "."
}
