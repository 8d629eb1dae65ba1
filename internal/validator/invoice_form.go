package validator

import (
	"fmt"

	"invoicedesk/internal/domain"
)

const defaultGSTRate = 18

// invoiceRule checks one top-level aspect of an invoice draft.
type invoiceRule struct {
	field string
	check func(inv *domain.Invoice) string
}

var invoiceRules = []invoiceRule{
	{
		field: "for",
		check: func(inv *domain.Invoice) string {
			if blank(inv.For.ID) {
				return "a client must be selected"
			}
			return ""
		},
	},
	{
		field: "date",
		check: func(inv *domain.Invoice) string {
			if blank(inv.Date) {
				return requiredMsg("date")
			}
			return ""
		},
	},
	{
		field: "currency",
		check: func(inv *domain.Invoice) string {
			if !inv.Currency.Valid() {
				return "currency must be one of INR, USD, EUR"
			}
			return ""
		},
	},
	{
		field: "gst_rate",
		check: func(inv *domain.Invoice) string {
			if r := inv.GSTRate.Float64(); r < 0 || r > 100 {
				return rangeMsg("gst_rate", 0, 100)
			}
			return ""
		},
	},
	{
		field: "items",
		check: func(inv *domain.Invoice) string {
			if len(inv.Items) == 0 {
				return "at least one line item is required"
			}
			return ""
		},
	},
}

// EvaluateInvoice runs the invoice schema, including the per-line-item
// rules, and collects the first violation per field path.
func EvaluateInvoice(inv *domain.Invoice) FieldErrors {
	errs := make(FieldErrors)
	for _, rule := range invoiceRules {
		if msg := rule.check(inv); msg != "" {
			errs.set(rule.field, msg)
		}
	}
	for i := range inv.Items {
		item := &inv.Items[i]
		prefix := fmt.Sprintf("items[%d]", i)
		if blank(item.Description) {
			errs.set(prefix+".description", requiredMsg("description"))
		}
		if item.Quantity.Float64() <= 0 {
			errs.set(prefix+".quantity", "quantity must be greater than zero")
		}
		if item.UnitPrice.Float64() < 0 {
			errs.set(prefix+".unit_price", "unit_price must not be negative")
		}
		if t := item.Tax.Float64(); t < 0 || t > 100 {
			errs.set(prefix+".tax", rangeMsg("tax", 0, 100))
		}
	}
	return errs
}

// InvoiceForm tracks an invoice draft with live validation and an
// explicit create/edit mode switch.
type InvoiceForm struct {
	Values domain.Invoice
	editID string
	errs   FieldErrors
}

// NewInvoiceForm creates an invoice form with backend-matching defaults.
func NewInvoiceForm() *InvoiceForm {
	f := &InvoiceForm{}
	f.Reset()
	return f
}

// Set applies a change to the draft and re-runs validation.
func (f *InvoiceForm) Set(mutate func(*domain.Invoice)) {
	mutate(&f.Values)
	f.revalidate()
}

// BeginEdit loads an existing invoice and switches submit mode from
// create to update. The form stays populated until ExitEdit.
func (f *InvoiceForm) BeginEdit(inv domain.Invoice) {
	f.Values = inv
	f.editID = inv.ID
	f.revalidate()
}

// ExitEdit leaves edit mode and resets the form to defaults. Edit mode
// never ends implicitly.
func (f *InvoiceForm) ExitEdit() {
	f.Reset()
}

// Editing reports whether the form is in edit mode, and for which id.
func (f *InvoiceForm) Editing() (string, bool) {
	return f.editID, f.editID != ""
}

// Reset restores create-mode defaults.
func (f *InvoiceForm) Reset() {
	f.Values = domain.Invoice{
		Currency: domain.CurrencyINR,
		GSTRate:  defaultGSTRate,
	}
	f.editID = ""
	f.revalidate()
}

// Errors returns the current field error map.
func (f *InvoiceForm) Errors() FieldErrors {
	return f.errs
}

// CanSubmit reports whether submission is allowed.
func (f *InvoiceForm) CanSubmit(busy bool) bool {
	return f.errs.Valid() && !busy
}

// Totals previews the invoice figures for the current draft.
func (f *InvoiceForm) Totals() domain.InvoiceTotals {
	return domain.CalculateTotals(f.Values.Items, f.Values.GSTRate.Float64())
}

func (f *InvoiceForm) revalidate() {
	f.errs = EvaluateInvoice(&f.Values)
}
