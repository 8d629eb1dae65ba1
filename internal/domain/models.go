package domain

// Client represents a billable client as stored by the backend.
// IDs are opaque strings assigned server-side; the client application
// never generates one except as a transient list key.
type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	BillingAddress string `json:"billing_address"`
	ActualAddress  string `json:"actual_address"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Issuer is the "from" block of an invoice: the party issuing it.
type Issuer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Logo    *Logo  `json:"logo,omitempty"`
}

// ClientRef is the "for" block of an invoice: a weak reference to a
// client by id, resolved by lookup at render time.
type ClientRef struct {
	ID string `json:"id"`
}

// LineItem is a single billable line on an invoice.
type LineItem struct {
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitPrice   Number `json:"unit_price"`
	Tax         Number `json:"tax"`
}

// Invoice mirrors the backend invoice document. Status, total and
// amount_paid are derived server-side; the application treats them as
// read-only and refetches after every mutation.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number,omitempty"`
	From          Issuer        `json:"from"`
	For           ClientRef     `json:"for"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	Currency      Currency      `json:"currency"`
	GSTRate       Number        `json:"gst_rate"`
	Items         []LineItem    `json:"items"`
	Status        InvoiceStatus `json:"status,omitempty"`
	Total         Number        `json:"total,omitempty"`
	AmountPaid    Number        `json:"amount_paid,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
}

// Logo is a stored file reference attached to an invoice issuer.
// Uploading creates it; attaching to the invoice happens on next save.
type Logo struct {
	ID           string `json:"id,omitempty"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name,omitempty"`
	URL          string `json:"url"`
	Size         int64  `json:"size,omitempty"`
	Created      string `json:"created,omitempty"`
}

// ImportRow is a transient candidate client parsed from a spreadsheet.
// Row is the 1-based position within the data rows (header excluded).
type ImportRow struct {
	Row    int
	Client Client
	Valid  bool
}

// ImportResult accounts for a best-effort batch commit of import rows.
type ImportResult struct {
	Succeeded int
	Failed    int
	Errors    []string
}

// StatusBreakdown counts invoices per payment status.
type StatusBreakdown struct {
	Paid    int `json:"paid"`
	Partial int `json:"partial"`
	Unpaid  int `json:"unpaid"`
}

// TopClient is one entry of the top-clients-by-revenue ranking.
type TopClient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Revenue Number `json:"revenue"`
}

// MonthlyRevenue is one point of the trailing monthly revenue series.
type MonthlyRevenue struct {
	Month  string `json:"month"`
	Amount Number `json:"amount"`
}

// ReportSummary is the read-only aggregate document computed server-side.
// Numeric fields decode through Number so a malformed wire value degrades
// to zero instead of failing the whole document.
type ReportSummary struct {
	TotalInvoiced    Number           `json:"total_invoiced"`
	TotalPaid        Number           `json:"total_paid"`
	TotalOutstanding Number           `json:"total_outstanding"`
	InvoiceCount     int              `json:"invoice_count"`
	ClientCount      int              `json:"client_count"`
	StatusBreakdown  StatusBreakdown  `json:"status_breakdown"`
	TopClients       []TopClient      `json:"top_clients"`
	MonthlyData      []MonthlyRevenue `json:"monthly_data"`
	AverageInvoice   Number           `json:"average_invoice"`
	CollectionRate   Number           `json:"collection_rate"`
}

// HealthStatus is the backend liveness probe response.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
