package domain

// Currency enumerates the currencies the backend accepts.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// CurrencySymbols maps Currency to its display symbol.
var CurrencySymbols = map[Currency]string{
	CurrencyINR: "₹",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
}

// Valid reports whether c is one of the accepted currencies.
func (c Currency) Valid() bool {
	_, ok := CurrencySymbols[c]
	return ok
}

// Symbol returns the display symbol for c, defaulting to the INR symbol
// the way the backend does for unknown currencies.
func (c Currency) Symbol() string {
	if s, ok := CurrencySymbols[c]; ok {
		return s
	}
	return CurrencySymbols[CurrencyINR]
}

// InvoiceStatus is the server-derived payment status of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "paid"
	StatusPartial InvoiceStatus = "partial"
	StatusUnpaid  InvoiceStatus = "unpaid"
)

// MaxLogoSizeBytes is the upload limit enforced before the request is sent.
const MaxLogoSizeBytes = 5 * 1024 * 1024

// AllowedLogoExtensions maps logo file extensions (without dot) to their
// MIME content types.
var AllowedLogoExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
}
