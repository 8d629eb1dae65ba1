package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
)

// TemplateFile builds a blank import template: the canonical headers
// plus one example row showing the expected shape.
func TemplateFile() (*excelize.File, error) {
	example := domain.Client{
		Name:           "Acme Corp",
		Email:          "billing@acme.example",
		Phone:          "+91 98765 43210",
		Company:        "Acme Corporation",
		BillingAddress: "1 Industrial Estate, Mumbai",
		ActualAddress:  "1 Industrial Estate, Mumbai",
		Notes:          "Preferred payment terms: net 30",
	}
	f, err := ExportClients([]domain.Client{example})
	if err != nil {
		return nil, fmt.Errorf("building template: %w", err)
	}
	return f, nil
}

// TemplateFilename is the canonical name for the downloaded template.
const TemplateFilename = "client-import-template.xlsx"
