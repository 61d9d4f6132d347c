package render

import (
	"strconv"

	"github.com/avinashrk/billpoint-api/pkg/printer"
)

// Thermal renders the invoice as an ESC/POS byte stream for a receipt
// printer of the given character width (32 for 58mm paper, 48 for 80mm).
func Thermal(inv Invoice, charWidth int) []byte {
	d := printer.NewDocument(charWidth)

	d.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(inv.ShopName).
		SetFontSize(printer.FontNormal)
	for _, line := range inv.AddressLines {
		d.Text(line)
	}

	d.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Bill No", inv.BillNo).
		KeyValue("Date", inv.IssuedAt.Format("02/01/2006 3:04 PM")).
		KeyValue("Customer", inv.CustomerName).
		KeyValue("Payment", inv.PaymentMode).
		Separator('-')

	for _, l := range inv.Lines {
		d.BillLine(l.Quantity, l.Name, l.Gram, "Rs "+Rupees(l.LineTotal))
	}

	d.Separator('-').
		KeyValue("Items / Qty", strconv.Itoa(len(inv.Lines))+" / "+strconv.Itoa(inv.TotalQuantity())).
		SetBold(true).
		KeyValue("Sub Total", "Rs "+Rupees(inv.SubTotal)).
		SetBold(false).
		Separator('-').
		SetAlign(printer.AlignCenter).
		Text("Thank you, visit again!").
		FeedLines(3).
		Cut()

	return d.Bytes()
}
