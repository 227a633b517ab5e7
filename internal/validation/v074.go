package validation

import (
	"github.com/jrschumacher/gpc-ping/internal/claims"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
	"github.com/jrschumacher/gpc-ping/internal/resources"
)

const v074PractitionerIdentifiers = 2

// V074Validator applies the v0.7.4 rules: a fixed audience, a mandatory
// requested_record, and extra id/name/role fields on the nested resources.
type V074Validator struct {
	common
}

// NewV074 returns the v0.7.4 validator for tok.
func NewV074(tok *jwtutil.Token) *V074Validator {
	return &V074Validator{common{tok: tok}}
}

func (v *V074Validator) Version() Version { return V074 }

// Audience requires the first aud value to be exactly the auth server token endpoint.
func (v *V074Validator) Audience() Result {
	var aud string
	if values := v.tok.Audience(); len(values) > 0 {
		aud = values[0]
	}
	if blank(aud) {
		return Fail("'aud' claim cannot be null or empty")
	}
	if aud != claims.V074AudienceURL {
		return Fail("'aud' claim is not valid - see GP Connect specification")
	}
	return Pass("'aud' claim is valid")
}

func (v *V074Validator) RequestedRecord() Result {
	r, _ := IdentifiedResourceCommon(v.tok, claims.RequestedRecord)
	return r
}

func (v *V074Validator) RequestingDevice() Result {
	device, failed := parseDevice[resources.Device](v.tok)
	if failed != nil {
		return *failed
	}

	r := DeviceCommon(device)
	if !r.Valid {
		return r
	}
	if blank(device.ID) {
		return Fail("Invalid requesting device - missing Id")
	}
	return r
}

func (v *V074Validator) RequestingOrganization() Result {
	r, org := IdentifiedResourceCommon(v.tok, claims.RequestingOrganization)
	if !r.Valid {
		return r
	}

	var msgs []string
	if blank(org.ID) {
		msgs = append(msgs, "Invalid 'requesting_organization' - missing Id")
	}
	if blank(org.Name) {
		msgs = append(msgs, "Invalid 'requesting_organization' - missing Name")
	}
	if len(msgs) > 0 {
		return Fail(msgs...)
	}
	return Pass("'requesting_organization' is valid")
}

func (v *V074Validator) RequestingPractitioner() (Result, string) {
	r, p := PractitionerCommon(v.tok, func(p *resources.V074Practitioner) *resources.Practitioner {
		return &p.Practitioner
	})
	if !r.Valid {
		return r, ""
	}

	if ids := PractitionerIdentifiers(&p.Practitioner, v074PractitionerIdentifiers); !ids.Valid {
		return ids, ""
	}
	if !hasRoleCoding(p) {
		return Fail("'requesting_practitioner.practitionerRole' role coding is missing or empty."), ""
	}
	return Pass("'requesting_practitioner claim is valid"), p.ID
}

// hasRoleCoding reports whether practitionerRole[0].role.coding[0] carries
// both a system and a code.
func hasRoleCoding(p *resources.V074Practitioner) bool {
	if len(p.PractitionerRole) == 0 || p.PractitionerRole[0].Role == nil {
		return false
	}
	coding := p.PractitionerRole[0].Role.Coding
	if len(coding) == 0 {
		return false
	}
	return !blank(coding[0].System) && !blank(coding[0].Code)
}
