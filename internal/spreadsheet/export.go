// Package spreadsheet is the import/export adapter between the client
// list and xlsx workbooks: export with capped auto-width columns,
// import with heuristic header matching, and a downloadable template.
package spreadsheet

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
)

const (
	clientSheet = "Clients"
	maxColWidth = 40
	minColWidth = 10
)

// ExportClients projects the client list into a workbook with the
// canonical columns. Column widths are sized to content, bounded to a
// maximum so a long notes field cannot blow up the sheet.
func ExportClients(clients []domain.Client) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(clientSheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(clientSheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(clientSheet, 1, 1, headerStyle)
	}

	widths := make([]int, len(Columns))
	for i, header := range Columns {
		widths[i] = len(header)
	}

	for rowIdx, client := range clients {
		values := clientRow(&client)
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(clientSheet, cell, value); err != nil {
				return nil, err
			}
			if len(value) > widths[colIdx] {
				widths[colIdx] = len(value)
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		w := width + 2
		if w > maxColWidth {
			w = maxColWidth
		}
		if w < minColWidth {
			w = minColWidth
		}
		_ = f.SetColWidth(clientSheet, col, col, float64(w))
	}

	if f.GetSheetName(0) != clientSheet {
		_ = f.DeleteSheet("Sheet1")
	}
	return f, nil
}

// clientRow projects a client into the canonical column order.
func clientRow(c *domain.Client) []string {
	return []string{
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.BillingAddress,
		c.ActualAddress,
		c.Notes,
	}
}

// ExportFilename returns the date-stamped workbook name for an export
// performed at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("clients-%s.xlsx", t.Format("2006-01-02"))
}
