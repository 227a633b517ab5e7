package resources

import (
	"strings"

	"github.com/goccy/go-json"
)

// Status classifies the outcome of parsing a claim's embedded JSON.
type Status int

const (
	// Parsed means the value decoded into a non-null document.
	Parsed Status = iota
	// Missing means the claim is not present in the token.
	Missing
	// Blank means the claim is present with an empty or whitespace value.
	Blank
	// Malformed means the value is not valid JSON for the target shape.
	Malformed
	// Null means the value is the JSON literal null.
	Null
)

// Result is the discriminated outcome of Parse. Value is set only when
// Status is Parsed; Err is set only when Status is Malformed.
type Result[T any] struct {
	Status Status
	Value  *T
	Err    error
}

// OK reports whether the claim decoded into a document.
func (r Result[T]) OK() bool {
	return r.Status == Parsed
}

// Parse decodes a claim value into T. present is false when the token does
// not carry the claim at all.
func Parse[T any](value string, present bool) Result[T] {
	if !present {
		return Result[T]{Status: Missing}
	}
	if strings.TrimSpace(value) == "" {
		return Result[T]{Status: Blank}
	}

	var doc *T
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return Result[T]{Status: Malformed, Err: err}
	}
	if doc == nil {
		return Result[T]{Status: Null}
	}
	return Result[T]{Status: Parsed, Value: doc}
}
