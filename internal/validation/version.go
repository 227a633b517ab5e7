package validation

import "strings"

// Version is a GP Connect specification version string such as "v1.6.0".
type Version string

// Supported specification versions.
const (
	V074 Version = "v0.7.4"
	V127 Version = "v1.2.7"
	V150 Version = "v1.5.0"
	V160 Version = "v1.6.0"
)

// String returns the version string.
func (v Version) String() string {
	return string(v)
}

// IsValid reports whether a validator exists for v.
func (v Version) IsValid() bool {
	_, ok := constructors[v]
	return ok
}

// Versions returns the supported versions, oldest first.
func Versions() []Version {
	return []Version{V074, V127, V150, V160}
}

// ParseVersion resolves a version string. Surrounding whitespace is ignored
// but the value is otherwise matched exactly.
func ParseVersion(s string) (Version, error) {
	v := Version(strings.TrimSpace(s))
	if !v.IsValid() {
		return "", &UnsupportedVersionError{Version: s}
	}
	return v, nil
}
