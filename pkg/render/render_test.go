package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() Invoice {
	return Invoice{
		ShopName:     "Sri Ganesh Sweets",
		AddressLines: []string{"12 Market Road, Madurai", "Phone: +91 98765 43210"},
		BillNo:       "BILL-a1b2c3d4",
		CustomerName: "Walk-in",
		PaymentMode:  "Cash",
		IssuedAt:     time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		Lines: []Line{
			{Name: "Kaju Katli", Gram: "250g", Quantity: 2, UnitPrice: 25000, LineTotal: 50000, Barcode: "8901234567890"},
			{Name: "Mysore Pak", Gram: "500g", Quantity: 1, UnitPrice: 24000, LineTotal: 24000, Barcode: "8901234567891"},
		},
		SubTotal: 74000,
	}
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "740.00", Rupees(74000))
	assert.Equal(t, "0.05", Rupees(5))
	assert.Equal(t, "0.00", Rupees(0))
	assert.Equal(t, "-12.50", Rupees(-1250))
}

func TestTotalQuantity(t *testing.T) {
	assert.Equal(t, 3, sampleInvoice().TotalQuantity())
	assert.Equal(t, 0, Invoice{}.TotalQuantity())
}

func TestHTMLContainsLinesAndTotals(t *testing.T) {
	out, err := HTML(sampleInvoice())
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, "Sri Ganesh Sweets")
	assert.Contains(t, doc, "BILL-a1b2c3d4")
	assert.Contains(t, doc, "Kaju Katli")
	assert.Contains(t, doc, "Mysore Pak")
	assert.Contains(t, doc, "250g")
	assert.Contains(t, doc, "500.00")
	assert.Contains(t, doc, "740.00")
	assert.Contains(t, doc, "14/03/2026")
	// both lines render as table rows
	assert.Equal(t, 2, strings.Count(doc, "<tr>\n  <td>"))
}

func TestHTMLEscapesItemNames(t *testing.T) {
	inv := sampleInvoice()
	inv.Lines[0].Name = `<script>alert("x")</script>`

	out, err := HTML(inv)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>alert")
}

func TestPDFProducesDocument(t *testing.T) {
	out, err := PDF(sampleInvoice())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}

func TestPDFPaginatesLongBills(t *testing.T) {
	inv := sampleInvoice()
	inv.Lines = nil
	for i := 0; i < 120; i++ {
		inv.Lines = append(inv.Lines, Line{Name: "Ladoo", Gram: "100g", Quantity: 1, UnitPrice: 2000, LineTotal: 2000})
	}
	inv.SubTotal = 240000

	out, err := PDF(inv)
	require.NoError(t, err)

	// 120 rows at 6mm cannot fit on a single A4 page; expect at least two
	// /Type /Page objects besides the /Type /Pages root
	assert.GreaterOrEqual(t, bytes.Count(out, []byte("/Type /Page")), 3)
}

func TestThermalTicket(t *testing.T) {
	out := Thermal(sampleInvoice(), 32)

	assert.True(t, bytes.HasPrefix(out, []byte{0x1B, '@'}))
	assert.Contains(t, string(out), "Kaju Katli")
	assert.Contains(t, string(out), "Rs 740.00")
	assert.True(t, bytes.HasSuffix(out, []byte{0x1D, 'V', 0x00}))
}
