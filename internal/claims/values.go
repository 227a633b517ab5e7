package claims

// V074AudienceURL is the auth server token endpoint hard-coded as the
// audience by the v0.7.4 specification.
const V074AudienceURL = "https://authorize.fhir.nhs.net/token"

// Reason for request values.
const (
	ReasonDirectCare = "directcare"
	ReasonMigration  = "migration"
)

// Confidentiality codes that may follow the scope in v1.6.0 requested_scope values.
const (
	ConfidentialityNormal     = "conf/N"
	ConfidentialityRestricted = "conf/R"
)

// BaseScopes returns the requested_scope values accepted by every version.
// A fresh slice is returned so callers cannot alter the shared table.
func BaseScopes() []string {
	return []string{"patient/*.read", "patient/*.write", "organization/*.read", "organisation/*.write"}
}

// ConfidentialityCodes returns the accepted v1.6.0 confidentiality codes.
func ConfidentialityCodes() []string {
	return []string{ConfidentialityNormal, ConfidentialityRestricted}
}
