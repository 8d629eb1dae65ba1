package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/domain"
)

func TestNumber_Unmarshal_PlainNumber(t *testing.T) {
	var n domain.Number
	require.NoError(t, json.Unmarshal([]byte(`42.5`), &n))
	assert.Equal(t, 42.5, n.Float64())
}

func TestNumber_Unmarshal_NumericString(t *testing.T) {
	var n domain.Number
	require.NoError(t, json.Unmarshal([]byte(`"18"`), &n))
	assert.Equal(t, 18.0, n.Float64())
}

func TestNumber_Unmarshal_Null(t *testing.T) {
	n := domain.Number(7)
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, 0.0, n.Float64())
}

func TestNumber_Unmarshal_Garbage(t *testing.T) {
	cases := []string{`"abc"`, `""`, `{}`, `[1,2]`, `true`}
	for _, raw := range cases {
		var n domain.Number
		require.NoError(t, json.Unmarshal([]byte(raw), &n), "input %s", raw)
		assert.Equal(t, 0.0, n.Float64(), "input %s", raw)
	}
}

func TestNumber_Unmarshal_InsideDocument(t *testing.T) {
	raw := `{"description":"Design","quantity":"3","unit_price":1200,"tax":null}`
	var item domain.LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, 3.0, item.Quantity.Float64())
	assert.Equal(t, 1200.0, item.UnitPrice.Float64())
	assert.Equal(t, 0.0, item.Tax.Float64())
}

func TestNumber_Marshal_PlainNumber(t *testing.T) {
	raw, err := json.Marshal(domain.Number(99.9))
	require.NoError(t, err)
	assert.Equal(t, "99.9", string(raw))
}

func TestCalculateTotals(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Design", Quantity: 2, UnitPrice: 100, Tax: 10},
		{Description: "Hosting", Quantity: 1, UnitPrice: 50, Tax: 0},
	}
	totals := domain.CalculateTotals(items, 18)

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.ItemTax)
	assert.Equal(t, 45.0, totals.GSTAmount)
	assert.Equal(t, 315.0, totals.Total)
}

func TestCalculateTotals_Empty(t *testing.T) {
	totals := domain.CalculateTotals(nil, 18)
	assert.Equal(t, 0.0, totals.Total)
}

func TestCalculateTotals_Rounding(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Odd", Quantity: 3, UnitPrice: 33.33, Tax: 5},
	}
	totals := domain.CalculateTotals(items, 18)
	// 99.99 + 4.9995 + 17.9982 = 122.9877, rounded to two decimals.
	assert.Equal(t, 122.99, totals.Total)
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, domain.StatusPaid, domain.DeriveStatus(100, 100))
	assert.Equal(t, domain.StatusPaid, domain.DeriveStatus(120, 100))
	assert.Equal(t, domain.StatusPartial, domain.DeriveStatus(50, 100))
	assert.Equal(t, domain.StatusUnpaid, domain.DeriveStatus(0, 100))
	assert.Equal(t, domain.StatusUnpaid, domain.DeriveStatus(0, 0))
}

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "₹", domain.CurrencyINR.Symbol())
	assert.Equal(t, "$", domain.CurrencyUSD.Symbol())
	assert.Equal(t, "€", domain.CurrencyEUR.Symbol())
	assert.Equal(t, "₹", domain.Currency("GBP").Symbol())
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, domain.CurrencyUSD.Valid())
	assert.False(t, domain.Currency("GBP").Valid())
	assert.False(t, domain.Currency("").Valid())
}

func TestNewAPIError_UsesBodyMessage(t *testing.T) {
	err := domain.NewAPIError(404, "Client not found")
	assert.Equal(t, "Client not found", err.Error())
	assert.Equal(t, 404, err.StatusCode)
}

func TestNewAPIError_GenericFallback(t *testing.T) {
	err := domain.NewAPIError(502, "")
	assert.Equal(t, "API Error: 502", err.Error())
}
