package validation

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"

	"github.com/jrschumacher/gpc-ping/internal/claims"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
	"github.com/jrschumacher/gpc-ping/internal/resources"
)

const (
	expectedLifetimeMinutes         = 5
	lifetimeToleranceMins           = 0.001
	requiredPractitionerIdentifiers = 3

	// Unix seconds of 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
	minUnixTime = -62135596800
	maxUnixTime = 253402300799
)

// ClaimValidator is implemented once per specification version. Run calls
// every check through this interface, so a version overrides a rule by
// defining the method on its own type.
type ClaimValidator interface {
	Version() Version
	AcceptedScopes() []string

	Header() Result
	Issuer() Result
	Audience() Result
	ReasonForRequest() Result
	RequestedScope(accepted []string) (Result, error)
	RequestingDevice() Result
	Lifetime() Result
	RequestingOrganization() Result
	// RequestingPractitioner also returns the practitioner id when the
	// check passed, for the subject check.
	RequestingPractitioner() (Result, string)
	Subject(practitionerID string) Result
}

// RecordValidator is implemented by versions that also require a
// requested_record claim.
type RecordValidator interface {
	RequestedRecord() Result
}

// common holds the rules shared by every version. Version types embed it and
// shadow the methods whose rules differ.
type common struct {
	tok *jwtutil.Token
}

func (c common) AcceptedScopes() []string {
	return claims.BaseScopes()
}

func (c common) Header() Result {
	h := c.tok.Header()
	if strings.EqualFold(h.Algorithm, jwa.NoSignature.String()) && strings.EqualFold(h.Type, "JWT") {
		return Pass("Header is valid")
	}
	return Fail("Header is invalid - check GP Connect specification")
}

func (c common) Issuer() Result {
	iss := c.tok.Issuer()
	if blank(iss) {
		return Fail("Issuer value cannot be null or empty")
	}

	u, err := url.Parse(iss)
	if err != nil || !u.IsAbs() || u.Host == "" || !strings.EqualFold(u.Scheme, "https") {
		return Fail("Issuer must contain the URL of auth server token endpoint")
	}
	return Pass("Issuer is valid")
}

func (c common) Subject(practitionerID string) Result {
	if practitionerID == "" {
		return Fail("Requesting practitioner id is null")
	}

	sub := c.tok.Value(claims.Subject)
	if sub == "" {
		return Fail("Subject cannot be null or empty")
	}
	if sub != practitionerID {
		return Fail("Subject and requesting_practitioner.Id mismatch")
	}
	return Pass("Subject is valid.")
}

func (c common) Audience() Result {
	aud, ok := c.tok.Claim(claims.Audience)
	if !ok {
		return Fail("'aud' claim cannot be null or empty")
	}
	if blank(aud) {
		return Fail("Audience claim not valid - must have value")
	}
	if !isURL(aud) {
		return Fail("Audience is not valid - see GP Connect specification")
	}
	return Pass("Audience is valid")
}

// Lifetime requires iat and exp to be Unix times exactly five minutes apart.
// Times outside years 1 to 9999 are rejected. Problems with both claims are
// reported together.
func (c common) Lifetime() Result {
	var msgs []string
	unixClaim := func(name string) int64 {
		v := strings.TrimSpace(c.tok.Value(name))
		if v == "" {
			msgs = append(msgs, fmt.Sprintf("Missing '%s' claim.", name))
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < minUnixTime || n > maxUnixTime {
			msgs = append(msgs, fmt.Sprintf("'%s' claim is not a valid Unix time.", name))
			return 0
		}
		return n
	}

	iat := unixClaim(claims.IssuedAt)
	exp := unixClaim(claims.Expiration)
	if len(msgs) > 0 {
		return Fail(msgs...)
	}

	minutes := float64(exp-iat) / 60
	if math.Abs(minutes-expectedLifetimeMinutes) > lifetimeToleranceMins {
		return Fail("Lifetime of claim is not valid")
	}
	return Pass("Lifetime is valid")
}

func (c common) ReasonForRequest() Result {
	reason := c.tok.Value(claims.ReasonForRequest)
	if blank(reason) {
		return Fail("Missing 'reason_for_request' claim")
	}
	if reason != claims.ReasonDirectCare {
		return Fail(fmt.Sprintf("Invalid 'reason_for_request': '%s'", reason))
	}
	return Pass("'reason_for_request' is valid.")
}

// scopeValue returns the requested_scope claim, or a failure when it is
// missing or blank. accepted must not be empty.
func (c common) scopeValue(accepted []string) (string, *Result, error) {
	if len(accepted) == 0 {
		return "", nil, &ArgumentError{Param: "acceptedClaimValues", Msg: "acceptedClaims must not be null or empty"}
	}

	scope, ok := c.tok.Claim(claims.RequestedScope)
	if !ok {
		r := Fail("Missing 'requested_scope' claim")
		return "", &r, nil
	}
	if blank(scope) {
		r := Fail("'requested_scope' claim cannot be null or empty")
		return "", &r, nil
	}
	return scope, nil, nil
}

func (c common) RequestedScope(accepted []string) (Result, error) {
	scope, failed, err := c.scopeValue(accepted)
	if err != nil {
		return Result{}, err
	}
	if failed != nil {
		return *failed, nil
	}

	values := strings.Split(scope, " ")
	if len(values) != 1 {
		return Fail("'requested_scope' claim must 1 value"), nil
	}
	if !slices.Contains(accepted, values[0]) {
		return Fail("Invalid 'requested_scope' claim - claim contains invalid value(s)"), nil
	}
	return Pass("'requested_scope' claim is valid"), nil
}

// parseDevice decodes requesting_device into T, reporting a failure result
// when the claim is absent, unparseable or null.
func parseDevice[T any](tok *jwtutil.Token) (*T, *Result) {
	value, present := tok.Claim(claims.RequestingDevice)
	parsed := resources.Parse[T](value, present)

	if parsed.OK() {
		return parsed.Value, nil
	}

	var r Result
	switch parsed.Status {
	case resources.Missing, resources.Blank:
		r = Fail("'requesting_device' claim cannot be null or empty")
	case resources.Malformed:
		r = Fail("Failed to parse 'requesting_device' claim")
	default:
		r = Fail(deviceInvalid)
	}
	return nil, &r
}

func (c common) RequestingDevice() Result {
	device, failed := parseDevice[resources.Device](c.tok)
	if failed != nil {
		return *failed
	}
	return DeviceCommon(device)
}

func (c common) RequestingOrganization() Result {
	r, _ := IdentifiedResourceCommon(c.tok, claims.RequestingOrganization)
	return r
}

func (c common) RequestingPractitioner() (Result, string) {
	r, p := PractitionerCommon(c.tok, func(p *resources.Practitioner) *resources.Practitioner { return p })
	if !r.Valid {
		return r, ""
	}

	if ids := PractitionerIdentifiers(p, requiredPractitionerIdentifiers); !ids.Valid {
		return ids, ""
	}
	return Pass("'requesting_practitioner claim is valid"), p.ID
}
