package jwtutil

import "errors"

// ErrInvalidFormat matches every error returned by Decode.
var ErrInvalidFormat = errors.New("invalid token format")

// FormatError reports why a token string could not be decoded as an unsigned JWT.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidFormat) hold for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func formatError(msg string, err error) error {
	return &FormatError{Msg: msg, Err: err}
}
