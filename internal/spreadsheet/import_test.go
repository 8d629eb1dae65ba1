package spreadsheet_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/spreadsheet"
	"invoicedesk/mocks"
)

// workbook builds an in-memory xlsx with the given header row and data
// rows on the first sheet.
func workbook(t *testing.T, headers []string, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseClients_CanonicalHeaders(t *testing.T) {
	buf := workbook(t,
		[]string{"Client Name", "Email", "Phone", "Company"},
		[][]string{
			{"Acme Corp", "billing@acme.example", "5550001111", "Acme"},
		})

	rows, err := spreadsheet.ParseClients(buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Valid)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "Acme Corp", rows[0].Client.Name)
	assert.Equal(t, "billing@acme.example", rows[0].Client.Email)
	assert.Equal(t, "5550001111", rows[0].Client.Phone)
	assert.Equal(t, "Acme", rows[0].Client.Company)
}

func TestParseClients_AliasHeaders(t *testing.T) {
	buf := workbook(t,
		[]string{"Full Name", "E-mail", "Mobile", "Organization", "Address"},
		[][]string{
			{"Globex", "ap@globex.example", "5550002222", "Globex Inc", "1 Globex Way"},
		})

	rows, err := spreadsheet.ParseClients(buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	c := rows[0].Client
	assert.Equal(t, "Globex", c.Name)
	assert.Equal(t, "ap@globex.example", c.Email)
	assert.Equal(t, "5550002222", c.Phone)
	assert.Equal(t, "Globex Inc", c.Company)
	assert.Equal(t, "1 Globex Way", c.BillingAddress)
}

func TestParseClients_InvalidRowsReturnedButFlagged(t *testing.T) {
	buf := workbook(t,
		[]string{"Client Name", "Email"},
		[][]string{
			{"Acme Corp", "billing@acme.example"},
			{"", "orphan@nowhere.example"},
			{"No Email Co", ""},
		})

	rows, err := spreadsheet.ParseClients(buf)

	require.NoError(t, err)
	require.Len(t, rows, 3, "every row is returned for preview")
	assert.True(t, rows[0].Valid)
	assert.False(t, rows[1].Valid, "missing name")
	assert.False(t, rows[2].Valid, "missing email")
}

func TestParseClients_EmptySheet(t *testing.T) {
	buf := workbook(t, []string{"Client Name", "Email"}, nil)

	_, err := spreadsheet.ParseClients(buf)

	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}

func TestParseClients_NotAWorkbook(t *testing.T) {
	_, err := spreadsheet.ParseClients(bytes.NewBufferString("this is not xlsx"))
	assert.Error(t, err)
}

func TestImporter_Commit_SkipsInvalidRows(t *testing.T) {
	api := new(mocks.MockClientAPI)
	api.On("CreateClient", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(&domain.Client{ID: "c1"}, nil)

	rows := []domain.ImportRow{
		{Row: 1, Client: domain.Client{Name: "Acme Corp", Email: "billing@acme.example"}, Valid: true},
		{Row: 2, Client: domain.Client{Email: "orphan@nowhere.example"}, Valid: false},
		{Row: 3, Client: domain.Client{Name: "Globex", Email: "ap@globex.example"}, Valid: true},
	}

	result := spreadsheet.NewImporter(api).Commit(context.Background(), rows)

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed, "invalid rows are excluded, not counted as failures")
	assert.Empty(t, result.Errors)
	api.AssertNumberOfCalls(t, "CreateClient", 2)
}

func TestImporter_Commit_FailureDoesNotAbortBatch(t *testing.T) {
	api := new(mocks.MockClientAPI)
	api.On("CreateClient", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Acme Corp"
	})).Return(nil, errors.New("duplicate email"))
	api.On("CreateClient", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Globex"
	})).Return(&domain.Client{ID: "c2"}, nil)

	rows := []domain.ImportRow{
		{Row: 1, Client: domain.Client{Name: "Acme Corp", Email: "billing@acme.example"}, Valid: true},
		{Row: 2, Client: domain.Client{Name: "Globex", Email: "ap@globex.example"}, Valid: true},
	}

	result := spreadsheet.NewImporter(api).Commit(context.Background(), rows)

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	// Data row 1 sits on spreadsheet line 3 (header + 1-indexing).
	assert.Equal(t, "Row 3: duplicate email", result.Errors[0])
}

func TestExportImport_RoundTrip(t *testing.T) {
	clients := []domain.Client{
		{
			Name:    "Acme Corp",
			Email:   "billing@acme.example",
			Phone:   "5550001111",
			Company: "Acme",
		},
		{
			Name:    "Globex",
			Email:   "ap@globex.example",
			Phone:   "5550002222",
			Company: "Globex Inc",
		},
	}

	f, err := spreadsheet.ExportClients(clients)
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := spreadsheet.ParseClients(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for i, row := range rows {
		assert.True(t, row.Valid)
		assert.Equal(t, clients[i].Name, row.Client.Name)
		assert.Equal(t, clients[i].Email, row.Client.Email)
		assert.Equal(t, clients[i].Phone, row.Client.Phone)
		assert.Equal(t, clients[i].Company, row.Client.Company)
	}
}
