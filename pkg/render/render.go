// Package render turns a finalized bill into its printable forms. All
// renderers consume the same Invoice view model, so the preview, the print
// window, the PDF and the thermal ticket always show the same lines and the
// same totals.
package render

import (
	"fmt"
	"time"
)

// Line is one bill line as it appears on the invoice.
type Line struct {
	Name       string
	Gram       string
	Quantity   int
	UnitPrice  int64 // cents
	LineTotal  int64 // cents
	Barcode    string
}

// Invoice is the immutable view model built once per generated bill.
type Invoice struct {
	ShopName     string
	AddressLines []string
	BillNo       string
	CustomerName string
	PaymentMode  string
	IssuedAt     time.Time
	Lines        []Line
	SubTotal     int64 // cents
}

// TotalQuantity returns the summed quantity across all lines.
func (inv Invoice) TotalQuantity() int {
	total := 0
	for _, l := range inv.Lines {
		total += l.Quantity
	}
	return total
}

// Rupees formats cents as a plain decimal amount, e.g. 74050 -> "740.50".
func Rupees(cents int64) string {
	neg := ""
	if cents < 0 {
		neg = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", neg, cents/100, cents%100)
}
