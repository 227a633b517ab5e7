package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jrschumacher/gpc-ping/internal/claims"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
	"github.com/jrschumacher/gpc-ping/internal/resources"
)

var urlPattern = regexp.MustCompile(`^(https?|ftp):\/\/[^\s/$.?#].[^\s]*$`)

const (
	deviceInvalid = "Invalid requesting device - see GP Connect specification"
	deviceWarning = "warning: resource_type is missing or empty."
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isURL(s string) bool {
	return urlPattern.MatchString(s)
}

// DeviceCommon checks the device fields every version requires. A missing
// resourceType only produces a warning, which rides along on whichever
// message is returned.
func DeviceCommon(device *resources.Device) Result {
	if device == nil || len(device.Identifier) == 0 {
		return Fail(deviceInvalid)
	}

	warning := ""
	if blank(device.ResourceType) {
		warning = deviceWarning
	}

	first := device.Identifier[0]
	if blank(first.System) ||
		blank(first.Value) ||
		blank(device.Model) ||
		blank(device.Version) ||
		!isURL(first.System) {
		return Fail(withWarning(deviceInvalid, warning))
	}

	return Pass(withWarning("The requesting device is valid.", warning))
}

func withWarning(msg, warning string) string {
	if warning == "" {
		return msg
	}
	return msg + " \n " + warning
}

// PractitionerCommon parses the requesting_practitioner claim into T and
// checks the id and name every version requires. base exposes the common
// practitioner fields of T. The parsed value is returned whenever the JSON
// decoded, even if a later check failed.
func PractitionerCommon[T any](tok *jwtutil.Token, base func(*T) *resources.Practitioner) (Result, *T) {
	value, present := tok.Claim(claims.RequestingPractitioner)
	parsed := resources.Parse[T](value, present)

	switch parsed.Status {
	case resources.Missing:
		return Fail("Missing 'requesting_practitioner' claim"), nil
	case resources.Blank:
		return Fail("'requesting_practitioner' value cannot be null or empty"), nil
	case resources.Malformed:
		return Fail("Invalid JSON in 'requesting_practitioner' claim."), nil
	case resources.Null:
		return Fail("'requesting_practitioner.id' is missing or empty."), nil
	}

	p := base(parsed.Value)
	if p.ID == "" {
		return Fail("'requesting_practitioner.id' is missing or empty."), parsed.Value
	}
	if p.Name == nil {
		return Fail("Name property is missing or empty."), parsed.Value
	}

	var msgs []string
	if len(p.Name.Family) == 0 {
		msgs = append(msgs, "name: family name is missing or empty.")
	}
	if len(p.Name.Given) == 0 {
		msgs = append(msgs, "name: given name is missing or empty.")
	}
	if len(p.Name.Prefix) == 0 {
		msgs = append(msgs, "name: prefix is missing or empty.")
	}
	if len(msgs) > 0 {
		return Fail(msgs...), parsed.Value
	}

	return Pass("'requesting_practitioner': name, id valid "), parsed.Value
}

// PractitionerIdentifiers requires exactly required identifiers and reports
// every entry with a blank system or value. A passing result has no messages.
func PractitionerIdentifiers(p *resources.Practitioner, required int) Result {
	if len(p.Identifier) == 0 {
		return Fail("'requesting_practitioner.identifier' is missing or empty.")
	}
	if len(p.Identifier) != required {
		return Fail("'requesting practitioner' claim does not match the required length")
	}

	var msgs []string
	for i, id := range p.Identifier {
		if id.System == "" {
			msgs = append(msgs, fmt.Sprintf("identifier:[%d] system' is missing or empty.", i))
		}
		if id.Value == "" {
			msgs = append(msgs, fmt.Sprintf("identifier:[%d] value' is missing or empty.", i))
		}
	}
	if len(msgs) > 0 {
		return Fail(msgs...)
	}
	return Pass()
}

// IdentifiedResourceCommon parses the named claim as an identified resource
// (requesting_organization or requested_record) and checks its resourceType
// and identifiers. Bad identifier entries are each reported by index.
func IdentifiedResourceCommon(tok *jwtutil.Token, name string) (Result, *resources.IdentifiedResource) {
	value, present := tok.Claim(name)
	parsed := resources.Parse[resources.IdentifiedResource](value, present)

	switch parsed.Status {
	case resources.Missing, resources.Blank:
		return Fail(fmt.Sprintf("'%s' claim cannot be null or empty", name)), nil
	case resources.Malformed:
		return Fail(parsed.Err.Error()), nil
	case resources.Null:
		return Fail(fmt.Sprintf("Invalid %s claim", strings.ReplaceAll(name, "_", " "))), nil
	}

	res := parsed.Value
	if blank(res.ResourceType) {
		return Fail(fmt.Sprintf("'%s:resource_type' claim cannot be null or empty", name)), res
	}
	if len(res.Identifier) == 0 {
		return Fail(fmt.Sprintf("'%s' claim is missing an identifier value", name)), res
	}

	var msgs []string
	for i, id := range res.Identifier {
		if blank(id.System) || blank(id.Value) {
			msgs = append(msgs, fmt.Sprintf("'%s' - identifier[%d] claim is invalid", name, i))
		}
	}
	if len(msgs) > 0 {
		return Fail(msgs...), res
	}

	return Pass(fmt.Sprintf("'%s' claim is valid", name)), res
}
