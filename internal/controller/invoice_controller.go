package controller

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/notify"
	"invoicedesk/internal/port"
	"invoicedesk/internal/validator"
)

// InvoiceController owns the in-memory invoice list, the invoice form
// and the payment-recording flow.
type InvoiceController struct {
	api      port.InvoiceAPI
	health   port.HealthAPI
	notifier *notify.Notifier
	log      zerolog.Logger

	state    State
	invoices []domain.Invoice
	selected string

	Form      *validator.InvoiceForm
	exportDir string
}

// NewInvoiceController creates a controller in the Loading state.
func NewInvoiceController(api port.InvoiceAPI, health port.HealthAPI, notifier *notify.Notifier, exportDir string) *InvoiceController {
	return &InvoiceController{
		api:       api,
		health:    health,
		notifier:  notifier,
		log:       logger.WithComponent("invoices"),
		state:     StateLoading,
		Form:      validator.NewInvoiceForm(),
		exportDir: exportDir,
	}
}

// State returns the controller lifecycle state.
func (c *InvoiceController) State() State { return c.state }

// Busy reports whether a mutation is in flight. Advisory only.
func (c *InvoiceController) Busy() bool { return c.state == StateMutating }

// Invoices returns the full in-memory list.
func (c *InvoiceController) Invoices() []domain.Invoice { return c.invoices }

// Load fetches the invoice list from the backend.
func (c *InvoiceController) Load(ctx context.Context) error {
	c.state = StateLoading
	defer func() { c.state = StateReady }()

	invoices, err := c.api.ListInvoices(ctx)
	if err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	c.invoices = invoices
	c.log.Debug().Int("count", len(invoices)).Msg("invoice list loaded")
	return nil
}

// Submit creates or updates depending on the form's edit mode. An
// invoice with no line items never reaches the network.
func (c *InvoiceController) Submit(ctx context.Context) error {
	if !c.Form.Errors().Valid() {
		return domain.ErrValidationFailed
	}
	id, editing := c.Form.Editing()
	return c.mutate(ctx, func(ctx context.Context) error {
		draft := c.Form.Values
		if editing {
			updated, err := c.api.UpdateInvoice(ctx, id, &draft)
			if err != nil {
				return err
			}
			c.notifier.Success("invoice " + updated.InvoiceNumber + " updated")
			return nil
		}
		created, err := c.api.CreateInvoice(ctx, &draft)
		if err != nil {
			return err
		}
		c.notifier.Success("invoice " + created.InvoiceNumber + " created")
		c.Form.Reset()
		return nil
	})
}

// BeginEdit loads an invoice into the form, switching submit mode from
// create to update.
func (c *InvoiceController) BeginEdit(id string) bool {
	for _, inv := range c.invoices {
		if inv.ID == id {
			c.Form.BeginEdit(inv)
			return true
		}
	}
	return false
}

// CancelEdit exits edit mode explicitly.
func (c *InvoiceController) CancelEdit() {
	c.Form.ExitEdit()
}

// Delete removes an invoice by id.
func (c *InvoiceController) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		if err := c.api.DeleteInvoice(ctx, id); err != nil {
			return err
		}
		c.notifier.Success("invoice deleted")
		return nil
	})
}

// Select marks an invoice as the target for payment recording.
func (c *InvoiceController) Select(id string) {
	c.selected = id
}

// Selected returns the invoice id targeted for payment, if any.
func (c *InvoiceController) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// RecordPayment posts a payment against the selected invoice. A
// non-positive or non-finite amount, or a missing selection, is
// rejected locally without an API call.
func (c *InvoiceController) RecordPayment(ctx context.Context, amount float64) error {
	if c.selected == "" {
		c.notifier.Error(domain.ErrNoInvoiceSelected.Error())
		return domain.ErrNoInvoiceSelected
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		c.notifier.Error(domain.ErrInvalidPayment.Error())
		return domain.ErrInvalidPayment
	}
	id := c.selected
	return c.mutate(ctx, func(ctx context.Context) error {
		updated, err := c.api.PayInvoice(ctx, id, amount)
		if err != nil {
			return err
		}
		c.notifier.Success(fmt.Sprintf("payment recorded; invoice %s is now %s", updated.InvoiceNumber, updated.Status))
		c.selected = ""
		return nil
	})
}

// DownloadPDF fetches the server-rendered PDF for an invoice and writes
// it to the export directory, returning the file path. The health
// endpoint is probed first so a dead backend yields a clearer message
// than a raw transport error mid-download.
func (c *InvoiceController) DownloadPDF(ctx context.Context, id string) (string, error) {
	if _, err := c.health.Health(ctx); err != nil {
		err = fmt.Errorf("cannot download PDF: %w", err)
		c.notifier.Error(err.Error())
		return "", err
	}
	data, err := c.api.InvoicePDF(ctx, id)
	if err != nil {
		c.notifier.Error(err.Error())
		return "", err
	}
	name := fmt.Sprintf("invoice-%s.pdf", id)
	if inv, ok := c.lookup(id); ok && inv.InvoiceNumber != "" {
		name = fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
	}
	path := filepath.Join(c.exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.notifier.Error(err.Error())
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	c.notifier.Success("saved " + path)
	return path, nil
}

// TotalsFor previews the figures an invoice draft will produce.
func (c *InvoiceController) TotalsFor(items []domain.LineItem, gstRate float64) domain.InvoiceTotals {
	return domain.CalculateTotals(items, gstRate)
}

func (c *InvoiceController) lookup(id string) (*domain.Invoice, bool) {
	for i := range c.invoices {
		if c.invoices[i].ID == id {
			return &c.invoices[i], true
		}
	}
	return nil, false
}

func (c *InvoiceController) mutate(ctx context.Context, op func(context.Context) error) error {
	c.state = StateMutating
	defer func() { c.state = StateReady }()

	if err := op(ctx); err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	invoices, err := c.api.ListInvoices(ctx)
	if err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	c.invoices = invoices
	return nil
}

// datestamp formats t the way export filenames expect.
func datestamp(t time.Time) string {
	return t.Format("20060102")
}
