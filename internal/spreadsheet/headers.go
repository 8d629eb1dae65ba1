package spreadsheet

import "strings"

// Columns is the canonical header set for client spreadsheets, in
// export order.
var Columns = []string{
	"Client Name",
	"Email",
	"Phone",
	"Company",
	"Billing Address",
	"Actual Address",
	"Notes",
}

// Header aliases recognized on import, per logical field. Order
// matters: the first alias that resolves to a non-empty cell wins.
var (
	nameAliases = []string{
		"Client Name", "Name", "name", "CLIENT NAME", "client name",
		"Full Name", "full_name", "client_name",
	}
	emailAliases = []string{
		"Email", "email", "EMAIL", "Email Address", "email_address", "E-mail",
	}
	phoneAliases = []string{
		"Phone", "phone", "PHONE", "Phone Number", "phone_number",
		"Mobile", "Contact",
	}
	companyAliases = []string{
		"Company", "company", "COMPANY", "Organization", "organisation",
	}
	billingAliases = []string{
		"Billing Address", "billing_address", "Billing address",
		"Address", "address",
	}
	actualAliases = []string{
		"Actual Address", "actual_address", "Shipping Address",
		"shipping_address",
	}
	notesAliases = []string{
		"Notes", "notes", "NOTES", "Comments", "comments", "Remarks",
	}
)

// ResolveField returns the first non-empty cell among the aliased
// headers. Pure function; row keys are the sheet's literal headers.
func ResolveField(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v := strings.TrimSpace(row[alias]); v != "" {
			return v
		}
	}
	return ""
}
