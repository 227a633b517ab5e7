// Package claims holds the GP Connect claim names and the fixed values the
// validators compare claims against.
package claims

import "github.com/lestrrat-go/jwx/v2/jwt"

// Registered and GP Connect private claim names.
const (
	Issuer                 = jwt.IssuerKey
	Subject                = jwt.SubjectKey
	Audience               = jwt.AudienceKey
	Expiration             = jwt.ExpirationKey
	IssuedAt               = jwt.IssuedAtKey
	ReasonForRequest       = "reason_for_request"
	RequestedRecord        = "requested_record"
	RequestedScope         = "requested_scope"
	RequestingDevice       = "requesting_device"
	RequestingOrganization = "requesting_organization"
	RequestingPractitioner = "requesting_practitioner"
)

// Mandatory returns the claim names every GP Connect token must carry, in the
// order they are reported when missing.
func Mandatory() []string {
	return []string{
		Issuer, Subject, Audience,
		Expiration, IssuedAt, ReasonForRequest,
		RequestedRecord, RequestedScope,
		RequestingDevice, RequestingOrganization,
		RequestingPractitioner,
	}
}
