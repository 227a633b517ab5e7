package validation

import (
	"testing"

	"github.com/jrschumacher/gpc-ping/internal/resources"
	"github.com/jrschumacher/gpc-ping/internal/testutil"
)

func parseDeviceJSON(t *testing.T, raw string) *resources.Device {
	t.Helper()

	parsed := resources.Parse[resources.Device](raw, true)
	if !parsed.OK() {
		t.Fatalf("Parse() status = %v, err = %v", parsed.Status, parsed.Err)
	}
	return parsed.Value
}

func TestDeviceCommon(t *testing.T) {
	const warned = " \n warning: resource_type is missing or empty."

	tests := []struct {
		name string
		json string
		want Result
	}{
		{
			"valid with resource type",
			`{"resourceType":"Device","identifier":[{"system":"https://valid.url","value":"123"}],"model":"m","version":"1"}`,
			Pass("The requesting device is valid."),
		},
		{
			"valid without resource type warns",
			`{"identifier":[{"system":"https://valid.url","value":"123"}],"model":"m","version":"1"}`,
			Pass("The requesting device is valid." + warned),
		},
		{
			"invalid system keeps warning",
			`{"identifier":[{"system":"invalid-url","value":"123"}],"model":"m","version":"1"}`,
			Fail("Invalid requesting device - see GP Connect specification" + warned),
		},
		{
			"invalid system",
			`{"resourceType":"Device","identifier":[{"system":"invalid-url","value":"123"}],"model":"m","version":"1"}`,
			Fail("Invalid requesting device - see GP Connect specification"),
		},
		{
			"blank model",
			`{"resourceType":"Device","identifier":[{"system":"https://valid.url","value":"123"}],"model":" ","version":"1"}`,
			Fail("Invalid requesting device - see GP Connect specification"),
		},
		{
			"blank version",
			`{"resourceType":"Device","identifier":[{"system":"https://valid.url","value":"123"}],"model":"m"}`,
			Fail("Invalid requesting device - see GP Connect specification"),
		},
		{
			"blank identifier value",
			`{"resourceType":"Device","identifier":[{"system":"https://valid.url","value":""}],"model":"m","version":"1"}`,
			Fail("Invalid requesting device - see GP Connect specification"),
		},
		{
			"only first identifier checked",
			`{"resourceType":"Device","identifier":[{"system":"https://valid.url","value":"1"},{"system":"","value":""}],"model":"m","version":"1"}`,
			Pass("The requesting device is valid."),
		},
		{
			"empty identifier list",
			`{"identifier":[],"model":"m","version":"1"}`,
			Fail("Invalid requesting device - see GP Connect specification"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeviceCommon(parseDeviceJSON(t, tt.json))
			assertResult(t, got, tt.want.Valid, tt.want.Messages...)
		})
	}
}

func TestDeviceCommon_Nil(t *testing.T) {
	assertResult(t, DeviceCommon(nil), false, "Invalid requesting device - see GP Connect specification")
}

func TestPractitionerCommon_Name(t *testing.T) {
	identity := func(p *resources.Practitioner) *resources.Practitioner { return p }

	tests := []struct {
		name string
		json string
		want Result
	}{
		{"no id", `{"name":{"family":["a"],"given":["b"],"prefix":["c"]}}`, Fail("'requesting_practitioner.id' is missing or empty.")},
		{"no name", `{"id":"1"}`, Fail("Name property is missing or empty.")},
		{"empty name parts", `{"id":"1","name":{"family":[],"given":[],"prefix":[]}}`, Fail(
			"name: family name is missing or empty.",
			"name: given name is missing or empty.",
			"name: prefix is missing or empty.",
		)},
		{"missing prefix", `{"id":"1","name":{"family":["a"],"given":["b"]}}`, Fail("name: prefix is missing or empty.")},
		{"valid", `{"id":"1","name":{"family":["a"],"given":["b"],"prefix":["c"]}}`, Pass("'requesting_practitioner': name, id valid ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := fixture(t, V127, func(p map[string]any) { p["requesting_practitioner"] = tt.json })

			got, parsed := PractitionerCommon(tok, identity)
			assertResult(t, got, tt.want.Valid, tt.want.Messages...)
			if parsed == nil {
				t.Error("expected the parsed practitioner to be returned")
			}
		})
	}
}

func TestPractitionerIdentifiers(t *testing.T) {
	p := &resources.Practitioner{
		Identifier: []resources.Identifier{
			{System: "", Value: ""},
			{System: "https://fhir.nhs.uk/Id/sds-user-id", Value: "1"},
			{System: "https://fhir.nhs.uk/Id/sds-role-profile-id", Value: ""},
		},
	}

	assertResult(t, PractitionerIdentifiers(p, 3), false,
		"identifier:[0] system' is missing or empty.",
		"identifier:[0] value' is missing or empty.",
		"identifier:[2] value' is missing or empty.",
	)
	assertResult(t, PractitionerIdentifiers(p, 2), false, "'requesting practitioner' claim does not match the required length")
	assertResult(t, PractitionerIdentifiers(&resources.Practitioner{}, 2), false, "'requesting_practitioner.identifier' is missing or empty.")

	good := parsePractitioner(t)
	assertResult(t, PractitionerIdentifiers(good, 3), true)
}

func parsePractitioner(t *testing.T) *resources.Practitioner {
	t.Helper()

	tok := fixture(t, V150, nil)
	_, p := PractitionerCommon(tok, func(p *resources.Practitioner) *resources.Practitioner { return p })
	if p == nil {
		t.Fatal("fixture practitioner did not parse")
	}
	if p.ID != testutil.PractitionerID {
		t.Fatalf("ID = %q", p.ID)
	}
	return p
}

func TestIdentifiedResourceCommon_RequestedRecord(t *testing.T) {
	tok := fixture(t, V074, nil)
	got, res := IdentifiedResourceCommon(tok, "requested_record")
	assertResult(t, got, true, "'requested_record' claim is valid")
	if res == nil || res.ResourceType != "Patient" {
		t.Errorf("resource = %+v", res)
	}

	tok = fixture(t, V074, func(p map[string]any) { delete(p, "requested_record") })
	got, res = IdentifiedResourceCommon(tok, "requested_record")
	assertResult(t, got, false, "'requested_record' claim cannot be null or empty")
	if res != nil {
		t.Errorf("expected nil resource, got %+v", res)
	}
}
