package validation

import (
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
)

var constructors = map[Version]func(*jwtutil.Token) ClaimValidator{
	V074: func(tok *jwtutil.Token) ClaimValidator { return NewV074(tok) },
	V127: func(tok *jwtutil.Token) ClaimValidator { return NewV127(tok) },
	V150: func(tok *jwtutil.Token) ClaimValidator { return NewV150(tok) },
	V160: func(tok *jwtutil.Token) ClaimValidator { return NewV160(tok) },
}

// New returns a fresh validator for version bound to tok.
func New(version Version, tok *jwtutil.Token) (ClaimValidator, error) {
	ctor, ok := constructors[version]
	if !ok {
		return nil, &UnsupportedVersionError{Version: version.String()}
	}
	return ctor(tok), nil
}

// Run executes every check of v in order and aggregates the results. The
// run is valid only when every check passed; messages from all checks,
// passing or not, are kept in order. The only error is an ArgumentError from
// a validator with no accepted scopes.
func Run(v ClaimValidator) (Result, error) {
	out := Pass()

	out.Merge(v.Header())
	out.Merge(v.Issuer())
	out.Merge(v.Audience())
	out.Merge(v.ReasonForRequest())

	scope, err := v.RequestedScope(v.AcceptedScopes())
	if err != nil {
		return Result{}, err
	}
	out.Merge(scope)

	if rv, ok := v.(RecordValidator); ok {
		out.Merge(rv.RequestedRecord())
	}

	out.Merge(v.RequestingDevice())
	out.Merge(v.Lifetime())
	out.Merge(v.RequestingOrganization())

	practitioner, practitionerID := v.RequestingPractitioner()
	out.Merge(practitioner)
	out.Merge(v.Subject(practitionerID))

	return out, nil
}

// Validate checks tok against the rules of version.
func Validate(version Version, tok *jwtutil.Token) (Result, error) {
	v, err := New(version, tok)
	if err != nil {
		return Result{}, err
	}

	return Run(v)
}
