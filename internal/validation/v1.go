package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jrschumacher/gpc-ping/internal/claims"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
)

// V127Validator applies the v1.2.7 rules, which are the shared defaults.
type V127Validator struct {
	common
}

// NewV127 returns the v1.2.7 validator for tok.
func NewV127(tok *jwtutil.Token) *V127Validator {
	return &V127Validator{common{tok: tok}}
}

func (v *V127Validator) Version() Version { return V127 }

// V150Validator applies the v1.5.0 rules, which are the shared defaults.
type V150Validator struct {
	common
}

// NewV150 returns the v1.5.0 validator for tok.
func NewV150(tok *jwtutil.Token) *V150Validator {
	return &V150Validator{common{tok: tok}}
}

func (v *V150Validator) Version() Version { return V150 }

// V160Validator applies the v1.6.0 rules: migration is an accepted reason
// for request and a scope may carry a confidentiality code.
type V160Validator struct {
	common
}

// NewV160 returns the v1.6.0 validator for tok.
func NewV160(tok *jwtutil.Token) *V160Validator {
	return &V160Validator{common{tok: tok}}
}

func (v *V160Validator) Version() Version { return V160 }

func (v *V160Validator) ReasonForRequest() Result {
	reason := v.tok.Value(claims.ReasonForRequest)
	if reason == "" {
		return Fail("Missing 'reason_for_request' claim")
	}
	if reason != claims.ReasonDirectCare && reason != claims.ReasonMigration {
		return Fail(fmt.Sprintf("Invalid 'reason_for_request': '%s'", reason))
	}
	return Pass("'reason_for_request' is valid")
}

// RequestedScope accepts "<scope>" or "<scope> <confidentiality code>".
func (v *V160Validator) RequestedScope(accepted []string) (Result, error) {
	scope, failed, err := v.scopeValue(accepted)
	if err != nil {
		return Result{}, err
	}
	if failed != nil {
		return *failed, nil
	}

	values := strings.Split(scope, " ")
	if len(values) > 2 {
		return Fail("requested_scope claim is  invalid"), nil
	}

	valid := slices.Contains(accepted, values[0])
	if len(values) == 2 {
		valid = valid && slices.Contains(claims.ConfidentialityCodes(), values[1])
	}
	if !valid {
		return Fail(fmt.Sprintf("Invalid 'requested_scope' claim - claim contains %d invalid value(s)", len(values))), nil
	}
	return Pass("'requested_scope' claim is valid"), nil
}
