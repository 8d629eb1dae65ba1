// Package validator is the declarative form validation engine. Each
// form has an ordered rule table; rules evaluate on every change
// ("live" mode) and the resulting field→message map gates submission.
package validator

import (
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// FieldErrors maps a field path to the first violation message found
// for that field. An empty map means the form may be submitted.
type FieldErrors map[string]string

// Valid reports whether no field carries an error.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Message returns the error for a field, or "" when the field is valid.
func (e FieldErrors) Message(field string) string {
	return e[field]
}

// set records the first message per field; later rules never overwrite
// an earlier failure on the same field.
func (e FieldErrors) set(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

var formatChecker = playground.New()

// validEmail reports whether s is a syntactically valid email address.
func validEmail(s string) bool {
	return formatChecker.Var(s, "required,email") == nil
}

func requiredMsg(label string) string {
	return fmt.Sprintf("%s is required", label)
}

func minLenMsg(label string, min int) string {
	return fmt.Sprintf("%s must be at least %d characters", label, min)
}

func rangeMsg(label string, lo, hi float64) string {
	return fmt.Sprintf("%s must be between %g and %g", label, lo, hi)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
