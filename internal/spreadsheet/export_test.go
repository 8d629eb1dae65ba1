package spreadsheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/spreadsheet"
)

func TestExportClients_HeadersAndRows(t *testing.T) {
	f, err := spreadsheet.ExportClients([]domain.Client{
		{Name: "Acme Corp", Email: "billing@acme.example", Company: "Acme"},
	})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, spreadsheet.Columns, rows[0])
	assert.Equal(t, "Acme Corp", rows[1][0])
	assert.Equal(t, "billing@acme.example", rows[1][1])
}

func TestExportClients_RemovesDefaultSheet(t *testing.T) {
	f, err := spreadsheet.ExportClients(nil)
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Sheet1")
	assert.Contains(t, f.GetSheetList(), "Clients")
}

func TestExportClients_ColumnWidthsCapped(t *testing.T) {
	long := "An extremely long free-form note that would otherwise produce an unreadably wide column in the exported workbook"
	f, err := spreadsheet.ExportClients([]domain.Client{
		{Name: "Acme Corp", Email: "billing@acme.example", Notes: long},
	})
	require.NoError(t, err)
	defer f.Close()

	// Notes is the seventh column.
	width, err := f.GetColWidth("Clients", "G")
	require.NoError(t, err)
	assert.LessOrEqual(t, width, 40.0)
	assert.GreaterOrEqual(t, width, 10.0)
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "clients-2026-08-29.xlsx", spreadsheet.ExportFilename(at))
}

func TestTemplateFile_HasExampleRow(t *testing.T) {
	f, err := spreadsheet.TemplateFile()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, spreadsheet.Columns, rows[0])
	assert.Equal(t, "Acme Corp", rows[1][0])
}

func TestResolveField_FirstNonEmptyAliasWins(t *testing.T) {
	row := map[string]string{
		"Name":      "  ",
		"Full Name": "Acme Corp",
	}
	assert.Equal(t, "Acme Corp", spreadsheet.ResolveField(row, []string{"Client Name", "Name", "Full Name"}))
	assert.Empty(t, spreadsheet.ResolveField(row, []string{"Email"}))
}
