package domain

import "math"

// InvoiceTotals is the client-side preview breakdown of an invoice.
// The server recomputes and stores the authoritative total on save;
// this exists so the form can show figures before submission.
type InvoiceTotals struct {
	Subtotal  float64
	ItemTax   float64
	GSTAmount float64
	Total     float64
}

// CalculateTotals computes subtotal, per-item tax, GST on the subtotal
// and the grand total, matching the backend's rounding to two decimals.
func CalculateTotals(items []LineItem, gstRate float64) InvoiceTotals {
	var t InvoiceTotals
	for _, item := range items {
		line := item.Quantity.Float64() * item.UnitPrice.Float64()
		t.Subtotal += line
		t.ItemTax += line * item.Tax.Float64() / 100
	}
	t.GSTAmount = t.Subtotal * gstRate / 100
	t.Total = round2(t.Subtotal + t.ItemTax + t.GSTAmount)
	return t
}

// DeriveStatus previews the payment status the server will assign for a
// given paid amount against a total.
func DeriveStatus(amountPaid, total float64) InvoiceStatus {
	switch {
	case amountPaid >= total && total > 0:
		return StatusPaid
	case amountPaid > 0:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
