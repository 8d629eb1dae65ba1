package validator

import (
	"strings"

	"invoicedesk/internal/domain"
)

const phoneMinLen = 7

// clientRule checks one aspect of a client draft. check returns "" when
// the rule passes.
type clientRule struct {
	field string
	check func(c *domain.Client) string
}

// clientRules is the declarative schema for the client form.
var clientRules = []clientRule{
	{
		field: "name",
		check: func(c *domain.Client) string {
			if blank(c.Name) {
				return requiredMsg("name")
			}
			return ""
		},
	},
	{
		field: "email",
		check: func(c *domain.Client) string {
			if blank(c.Email) {
				return requiredMsg("email")
			}
			return ""
		},
	},
	{
		field: "email",
		check: func(c *domain.Client) string {
			if !blank(c.Email) && !validEmail(strings.TrimSpace(c.Email)) {
				return "email must be a valid email address"
			}
			return ""
		},
	},
	{
		// Phone is optional; when present it must be long enough to dial.
		field: "phone",
		check: func(c *domain.Client) string {
			if !blank(c.Phone) && len(strings.TrimSpace(c.Phone)) < phoneMinLen {
				return minLenMsg("phone", phoneMinLen)
			}
			return ""
		},
	},
}

// EvaluateClient runs every client form rule and collects the first
// violation per field.
func EvaluateClient(c *domain.Client) FieldErrors {
	errs := make(FieldErrors)
	for _, rule := range clientRules {
		if msg := rule.check(c); msg != "" {
			errs.set(rule.field, msg)
		}
	}
	return errs
}

// ClientForm tracks a client draft together with its live validation
// state. Every change re-evaluates the whole schema.
type ClientForm struct {
	Values domain.Client
	errs   FieldErrors
}

// NewClientForm creates an empty client form in create mode.
func NewClientForm() *ClientForm {
	f := &ClientForm{}
	f.revalidate()
	return f
}

// Set applies a change to the draft and re-runs validation.
func (f *ClientForm) Set(mutate func(*domain.Client)) {
	mutate(&f.Values)
	f.revalidate()
}

// Load replaces the draft with an existing record (edit mode).
func (f *ClientForm) Load(c domain.Client) {
	f.Values = c
	f.revalidate()
}

// Reset clears the form back to create-mode defaults.
func (f *ClientForm) Reset() {
	f.Values = domain.Client{}
	f.revalidate()
}

// Errors returns the current field error map.
func (f *ClientForm) Errors() FieldErrors {
	return f.errs
}

// CanSubmit reports whether submission is allowed: all fields valid and
// no mutation in flight.
func (f *ClientForm) CanSubmit(busy bool) bool {
	return f.errs.Valid() && !busy
}

func (f *ClientForm) revalidate() {
	f.errs = EvaluateClient(&f.Values)
}
