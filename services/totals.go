package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat bill-level tax applied at checkout.
var DefaultTaxRate = decimal.RequireFromString("0.05")

// BillLine is one row of a bill being built.
type BillLine struct {
	MenuItemID uint            `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// LineTotal is quantity × unit price. The price is rounded to cents first so
// the total matches the price stored on the bill item.
func (l BillLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Round(2).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateTotals sums the lines and applies the bill tax.
// total = subtotal + round2(subtotal × rate).
func CalculateTotals(lines []BillLine, rate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := subtotal.Mul(rate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// GenerateBillNumber formats BILL-YYYYMM-NNNNNN where the suffix is the last
// six digits of the millisecond timestamp.
func GenerateBillNumber(t time.Time) string {
	suffix := t.UnixMilli() % 1_000_000
	if suffix < 0 {
		suffix += 1_000_000
	}
	return fmt.Sprintf("BILL-%04d%02d-%06d", t.Year(), int(t.Month()), suffix)
}
