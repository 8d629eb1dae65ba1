package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/port"
)

// rowOffset converts a 1-based data row position into the spreadsheet
// row number users see: +1 for the header row, +1 for 1-indexing of the
// data block itself.
const rowOffset = 2

// ParseClients reads the first sheet of an uploaded workbook into
// candidate client rows. Every row is returned, valid or not, so the
// caller can present a full preview before committing.
func ParseClients(r io.Reader) ([]domain.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, domain.ErrEmptySheet
	}

	headers := rows[0]
	out := make([]domain.ImportRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		record := make(map[string]string, len(headers))
		for col, header := range headers {
			if col < len(cells) {
				record[strings.TrimSpace(header)] = cells[col]
			}
		}
		client := domain.Client{
			Name:           ResolveField(record, nameAliases),
			Email:          ResolveField(record, emailAliases),
			Phone:          ResolveField(record, phoneAliases),
			Company:        ResolveField(record, companyAliases),
			BillingAddress: ResolveField(record, billingAliases),
			ActualAddress:  ResolveField(record, actualAliases),
			Notes:          ResolveField(record, notesAliases),
		}
		out = append(out, domain.ImportRow{
			Row:    i + 1,
			Client: client,
			Valid:  client.Name != "" && client.Email != "",
		})
	}
	return out, nil
}

// Importer commits parsed rows against the backend, one independent
// create per row.
type Importer struct {
	api port.ClientAPI
	log zerolog.Logger
}

// NewImporter creates an Importer.
func NewImporter(api port.ClientAPI) *Importer {
	return &Importer{api: api, log: logger.WithComponent("import")}
}

// Commit submits every valid row sequentially. Failures never abort the
// batch; each is recorded against the row's original spreadsheet
// position so the message points at the right line in the file.
func (im *Importer) Commit(ctx context.Context, rows []domain.ImportRow) domain.ImportResult {
	var result domain.ImportResult
	for _, row := range rows {
		if !row.Valid {
			continue
		}
		client := row.Client
		if _, err := im.api.CreateClient(ctx, &client); err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: %s", row.Row+rowOffset, err.Error()))
			continue
		}
		result.Succeeded++
	}
	im.log.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("import batch committed")
	return result
}
