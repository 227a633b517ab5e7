// Package resources holds the FHIR-shaped documents GP Connect embeds as JSON
// inside JWT claims, and the parse step that turns a claim value into one.
package resources

// Identifier is a FHIR identifier (system + value).
type Identifier struct {
	System string `json:"system"`
	Value  string `json:"value"`
}

// HumanName is the practitioner name block. GP Connect sends each part as a list.
type HumanName struct {
	Family []string `json:"family"`
	Given  []string `json:"given"`
	Prefix []string `json:"prefix"`
}

// Practitioner is the requesting_practitioner claim.
type Practitioner struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Identifier   []Identifier `json:"identifier"`
	Name         *HumanName   `json:"name"`
}

// Coding is a FHIR coding (system + code).
type Coding struct {
	System string `json:"system"`
	Code   string `json:"code"`
}

// Role wraps the codings of a practitioner role.
type Role struct {
	Coding []Coding `json:"coding"`
}

// PractitionerRole is one entry of the v0.7.4 practitionerRole list.
type PractitionerRole struct {
	Role *Role `json:"role"`
}

// V074Practitioner is the v0.7.4 requesting_practitioner, which also carries
// the practitioner's SDS job role.
type V074Practitioner struct {
	Practitioner
	PractitionerRole []PractitionerRole `json:"practitionerRole"`
}

// Device is the requesting_device claim. ID is only required by v0.7.4.
type Device struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Identifier   []Identifier `json:"identifier"`
	Model        string       `json:"model"`
	Version      string       `json:"version"`
}

// IdentifiedResource is the shape shared by requesting_organization and
// requested_record: a resource type plus a non-empty identifier list. ID and
// Name are only checked on the v0.7.4 organization.
type IdentifiedResource struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Identifier   []Identifier `json:"identifier"`
}
