// Package validation checks decoded GP Connect tokens against the claim rules
// of each supported specification version.
package validation

import "strings"

// Result is the outcome of a single claim check or of a whole validation run.
// Messages carries confirmations as well as failures so callers get a full
// audit trail of what was checked.
type Result struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

// Pass returns a valid result carrying msgs.
func Pass(msgs ...string) Result {
	return Result{Valid: true, Messages: msgs}
}

// Fail returns an invalid result carrying msgs.
func Fail(msgs ...string) Result {
	return Result{Valid: false, Messages: msgs}
}

// Merge folds o into r: r stays valid only if both are valid, and o's
// messages are appended after r's.
func (r *Result) Merge(o Result) {
	r.Valid = r.Valid && o.Valid
	r.Messages = append(r.Messages, o.Messages...)
}

// String joins the messages the way they are shown to API consumers.
func (r Result) String() string {
	return strings.Join(r.Messages, "; ")
}
