package validation

import (
	"github.com/jrschumacher/gpc-ping/internal/claims"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
)

// MissingClaims returns the mandatory claim names tok does not carry, in
// registry order. The result is empty when every mandatory claim is present.
func MissingClaims(tok *jwtutil.Token) []string {
	var missing []string
	for _, name := range claims.Mandatory() {
		if !tok.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Report is the full outcome of checking a raw token string.
type Report struct {
	Version       Version         `json:"version"`
	Header        jwtutil.Header  `json:"header"`
	Claims        []jwtutil.Claim `json:"claims"`
	MissingClaims []string        `json:"missingClaims"`
	Result
}

// ValidateToken decodes raw and validates it against version. Decode
// failures are returned as *jwtutil.FormatError and an unknown version as
// *UnsupportedVersionError; the version is checked first.
func ValidateToken(raw string, version string) (*Report, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}

	tok, err := jwtutil.Decode(raw)
	if err != nil {
		return nil, err
	}

	res, err := Validate(v, tok)
	if err != nil {
		return nil, err
	}

	return &Report{
		Version:       v,
		Header:        tok.Header(),
		Claims:        tok.Claims(),
		MissingClaims: MissingClaims(tok),
		Result:        res,
	}, nil
}
