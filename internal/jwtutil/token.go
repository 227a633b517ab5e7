// Package jwtutil decodes compact, unsigned JWTs into the token model the
// GP Connect validators work on.
package jwtutil

import (
	"time"

	"github.com/jrschumacher/gpc-ping/internal/claims"
)

// Header holds the JOSE header fields the validators inspect.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Claim is a single name/value pair from the token payload.
// Array claims are expanded into one Claim per element, so names are not unique.
type Claim struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Token is a decoded JWT. It is immutable once constructed.
type Token struct {
	header   Header
	claims   []Claim
	audience []string

	issuedAt  time.Time
	expiry    time.Time
	notBefore time.Time
}

// NewToken builds a token from an already decoded header and claim list.
func NewToken(header Header, list ...Claim) *Token {
	t := &Token{
		header: header,
		claims: append([]Claim(nil), list...),
	}
	for _, c := range t.claims {
		if c.Name == claims.Audience {
			t.audience = append(t.audience, c.Value)
		}
	}
	return t
}

// Header returns the token's JOSE header.
func (t *Token) Header() Header {
	return t.header
}

// Claims returns a copy of the claim collection in payload order.
func (t *Token) Claims() []Claim {
	return append([]Claim(nil), t.claims...)
}

// Claim returns the value of the first claim with the given name.
func (t *Token) Claim(name string) (string, bool) {
	for _, c := range t.claims {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Value returns the first value of the named claim, or "" when absent.
func (t *Token) Value(name string) string {
	v, _ := t.Claim(name)
	return v
}

// Has reports whether the token carries the named claim.
func (t *Token) Has(name string) bool {
	_, ok := t.Claim(name)
	return ok
}

// Issuer returns the first iss claim.
func (t *Token) Issuer() string {
	return t.Value(claims.Issuer)
}

// Audience returns every aud value in payload order.
func (t *Token) Audience() []string {
	return append([]string(nil), t.audience...)
}

// IssuedAt, Expiry and NotBefore expose the registered time claims as
// interpreted by jwx. They are zero when the claim is absent or not a NumericDate.
func (t *Token) IssuedAt() time.Time  { return t.issuedAt }
func (t *Token) Expiry() time.Time    { return t.expiry }
func (t *Token) NotBefore() time.Time { return t.notBefore }

// ClaimMap returns the claims keyed by name, keeping the first value of each.
func (t *Token) ClaimMap() map[string]string {
	out := make(map[string]string, len(t.claims))
	for _, c := range t.claims {
		if _, ok := out[c.Name]; !ok {
			out[c.Name] = c.Value
		}
	}
	return out
}
