package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/validator"
)

func validInvoice() domain.Invoice {
	return domain.Invoice{
		For:      domain.ClientRef{ID: "c1"},
		Date:     "2026-08-01",
		Currency: domain.CurrencyINR,
		GSTRate:  18,
		Items: []domain.LineItem{
			{Description: "Design", Quantity: 2, UnitPrice: 100, Tax: 10},
		},
	}
}

func TestEvaluateInvoice_Valid(t *testing.T) {
	inv := validInvoice()
	assert.True(t, validator.EvaluateInvoice(&inv).Valid())
}

func TestEvaluateInvoice_MissingClient(t *testing.T) {
	inv := validInvoice()
	inv.For.ID = ""
	errs := validator.EvaluateInvoice(&inv)
	assert.Equal(t, "a client must be selected", errs.Message("for"))
}

func TestEvaluateInvoice_MissingDate(t *testing.T) {
	inv := validInvoice()
	inv.Date = ""
	errs := validator.EvaluateInvoice(&inv)
	assert.Equal(t, "date is required", errs.Message("date"))
}

func TestEvaluateInvoice_BadCurrency(t *testing.T) {
	inv := validInvoice()
	inv.Currency = "GBP"
	errs := validator.EvaluateInvoice(&inv)
	assert.Equal(t, "currency must be one of INR, USD, EUR", errs.Message("currency"))
}

func TestEvaluateInvoice_GSTRateOutOfRange(t *testing.T) {
	for _, rate := range []float64{-1, 101} {
		inv := validInvoice()
		inv.GSTRate = domain.Number(rate)
		errs := validator.EvaluateInvoice(&inv)
		assert.NotEmpty(t, errs.Message("gst_rate"), "rate %g", rate)
	}
}

func TestEvaluateInvoice_NoItems(t *testing.T) {
	inv := validInvoice()
	inv.Items = nil
	errs := validator.EvaluateInvoice(&inv)
	assert.Equal(t, "at least one line item is required", errs.Message("items"))
}

func TestEvaluateInvoice_ItemRules(t *testing.T) {
	inv := validInvoice()
	inv.Items = []domain.LineItem{
		{Description: "", Quantity: 0, UnitPrice: -5, Tax: 200},
	}
	errs := validator.EvaluateInvoice(&inv)
	assert.Equal(t, "description is required", errs.Message("items[0].description"))
	assert.Equal(t, "quantity must be greater than zero", errs.Message("items[0].quantity"))
	assert.Equal(t, "unit_price must not be negative", errs.Message("items[0].unit_price"))
	assert.NotEmpty(t, errs.Message("items[0].tax"))
}

func TestEvaluateInvoice_ItemPathsAreIndexed(t *testing.T) {
	inv := validInvoice()
	inv.Items = append(inv.Items, domain.LineItem{Description: "", Quantity: 1, UnitPrice: 1})
	errs := validator.EvaluateInvoice(&inv)
	assert.Empty(t, errs.Message("items[0].description"))
	assert.Equal(t, "description is required", errs.Message("items[1].description"))
}

func TestInvoiceForm_Defaults(t *testing.T) {
	f := validator.NewInvoiceForm()
	assert.Equal(t, domain.CurrencyINR, f.Values.Currency)
	assert.Equal(t, 18.0, f.Values.GSTRate.Float64())
	assert.False(t, f.CanSubmit(false), "an empty draft never submits")
}

func TestInvoiceForm_EditMode(t *testing.T) {
	f := validator.NewInvoiceForm()
	_, editing := f.Editing()
	assert.False(t, editing)

	inv := validInvoice()
	inv.ID = "inv-1"
	f.BeginEdit(inv)

	id, editing := f.Editing()
	assert.True(t, editing)
	assert.Equal(t, "inv-1", id)
	assert.Equal(t, "c1", f.Values.For.ID)

	// Edit mode only ends explicitly.
	f.Set(func(inv *domain.Invoice) { inv.Date = "2026-09-01" })
	_, editing = f.Editing()
	assert.True(t, editing)

	f.ExitEdit()
	_, editing = f.Editing()
	assert.False(t, editing)
	assert.Equal(t, domain.CurrencyINR, f.Values.Currency)
}

func TestInvoiceForm_Totals(t *testing.T) {
	f := validator.NewInvoiceForm()
	f.Set(func(inv *domain.Invoice) {
		inv.Items = []domain.LineItem{
			{Description: "Design", Quantity: 2, UnitPrice: 100, Tax: 10},
		}
	})
	totals := f.Totals()
	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.ItemTax)
	assert.Equal(t, 36.0, totals.GSTAmount)
	assert.Equal(t, 256.0, totals.Total)
}
