package testutil

// IssuedAt is the iat used by fixture payloads; Expiry is five minutes later.
const (
	IssuedAt int64 = 1717775700
	Expiry   int64 = IssuedAt + 300
)

// PractitionerID is the fixture practitioner id, also used as sub.
const PractitionerID = "f7737bf5-cfe7-491c-af3a-6f7177d5aee1"

// Practitioner returns a requesting_practitioner object carrying n identifiers.
func Practitioner(identifiers int) map[string]any {
	systems := []string{
		"https://fhir.nhs.uk/Id/sds-user-id",
		"https://fhir.nhs.uk/Id/sds-role-profile-id",
		"https://consumersupplier.com/Id/user-guid",
	}
	var ids []map[string]any
	for i := 0; i < identifiers; i++ {
		ids = append(ids, map[string]any{"system": systems[i%len(systems)], "value": "111222333444"})
	}
	return map[string]any{
		"resourceType": "Practitioner",
		"id":           PractitionerID,
		"identifier":   ids,
		"name": map[string]any{
			"family": []string{"Jones"},
			"given":  []string{"Claire"},
			"prefix": []string{"Dr"},
		},
		"practitionerRole": []map[string]any{{
			"role": map[string]any{
				"coding": []map[string]any{{
					"system": "http://fhir.nhs.net/ValueSet/sds-job-role-name-1",
					"code":   "R8000",
				}},
			},
		}},
	}
}

// Device returns a valid requesting_device object.
func Device() map[string]any {
	return map[string]any{
		"resourceType": "Device",
		"id":           "1",
		"identifier":   []map[string]any{{"system": "https://consumersupplier.com/Id/device-identifier", "value": "CONS-APP-4"}},
		"model":        "Consumer product name",
		"version":      "5.3.0",
	}
}

// Organization returns a valid requesting_organization object.
func Organization() map[string]any {
	return map[string]any{
		"resourceType": "Organization",
		"id":           "1",
		"name":         "GP Connect Assurance",
		"identifier":   []map[string]any{{"system": "https://fhir.nhs.uk/Id/ods-organization-code", "value": "GPCA0001"}},
	}
}

// Record returns a valid requested_record object.
func Record() map[string]any {
	return map[string]any{
		"resourceType": "Patient",
		"identifier":   []map[string]any{{"system": "https://fhir.nhs.uk/Id/nhs-number", "value": "9476719931"}},
	}
}

// Payload returns a payload that passes every check for the given version.
// Nested resources are embedded as JSON objects, the form consumers send.
func Payload(version string) map[string]any {
	identifiers := 3
	audience := "https://provider.thirdparty.nhs.uk/GP0001/STU3/1"
	if version == "v0.7.4" {
		identifiers = 2
		audience = "https://authorize.fhir.nhs.net/token"
	}
	return map[string]any{
		"iss":                     "https://consumersupplier.thirdparty.nhs.uk/",
		"sub":                     PractitionerID,
		"aud":                     audience,
		"exp":                     Expiry,
		"iat":                     IssuedAt,
		"reason_for_request":      "directcare",
		"requested_scope":         "patient/*.read",
		"requested_record":        Record(),
		"requesting_device":       Device(),
		"requesting_organization": Organization(),
		"requesting_practitioner": Practitioner(identifiers),
	}
}
