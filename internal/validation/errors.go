package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches every ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedVersion matches every UnsupportedVersionError.
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// ArgumentError signals a misconfigured validator, not a bad token.
type ArgumentError struct {
	Param string
	Msg   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (parameter '%s')", e.Msg, e.Param)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// UnsupportedVersionError is returned when a caller asks for a specification
// version that has no validator.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Version %s is not supported", e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
