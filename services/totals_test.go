package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name                 string
		lines                []BillLine
		subtotal, tax, total string
	}{
		{
			name: "two lines",
			lines: []BillLine{
				{MenuItemID: 1, Quantity: 2, UnitPrice: dec("100.00")},
				{MenuItemID: 2, Quantity: 1, UnitPrice: dec("50.00")},
			},
			subtotal: "250.00", tax: "12.50", total: "262.50",
		},
		{
			name:     "empty",
			subtotal: "0.00", tax: "0.00", total: "0.00",
		},
		{
			name:     "tax rounds half up",
			lines:    []BillLine{{MenuItemID: 1, Quantity: 1, UnitPrice: dec("0.10")}},
			subtotal: "0.10", tax: "0.01", total: "0.11",
		},
		{
			name:     "overridden price",
			lines:    []BillLine{{MenuItemID: 1, Quantity: 3, UnitPrice: dec("33.33")}},
			subtotal: "99.99", tax: "5.00", total: "104.99",
		},
		{
			name:     "unit price rounds before quantity",
			lines:    []BillLine{{MenuItemID: 1, Quantity: 3, UnitPrice: dec("0.335")}},
			subtotal: "1.02", tax: "0.05", total: "1.07",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.lines, DefaultTaxRate)
			assert.Equal(t, tt.subtotal, got.Subtotal.StringFixed(2))
			assert.Equal(t, tt.tax, got.Tax.StringFixed(2))
			assert.Equal(t, tt.total, got.Total.StringFixed(2))
			assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)))
		})
	}
}

func TestCalculateTotals_CustomRate(t *testing.T) {
	got := CalculateTotals([]BillLine{{MenuItemID: 1, Quantity: 1, UnitPrice: dec("200")}}, dec("0.18"))
	assert.Equal(t, "36.00", got.Tax.StringFixed(2))
	assert.Equal(t, "236.00", got.Total.StringFixed(2))
}

var billNumberRe = regexp.MustCompile(`^BILL-\d{6}-\d{6}$`)

func TestGenerateBillNumber(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC).Add(123456 * time.Millisecond)
	got := GenerateBillNumber(ts)

	assert.Regexp(t, billNumberRe, got)
	assert.Equal(t, "BILL-202403-", got[:12])

	want := ts.UnixMilli() % 1_000_000
	assert.Equal(t, fmtSuffix(want), got[12:])
}

func TestGenerateBillNumber_AnyInstant(t *testing.T) {
	for _, ts := range []time.Time{
		time.Unix(0, 0).UTC(),
		time.Date(1999, time.December, 31, 23, 59, 59, 999e6, time.UTC),
		time.Date(2031, time.January, 1, 0, 0, 0, 1e6, time.UTC),
	} {
		assert.Regexp(t, billNumberRe, GenerateBillNumber(ts), ts.String())
	}
}

func fmtSuffix(n int64) string {
	return decimal.NewFromInt(n + 1_000_000).String()[1:]
}
