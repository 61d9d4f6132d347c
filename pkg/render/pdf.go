package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Column widths in mm for the A4 line-item table.
var pdfCols = []float64{12, 68, 25, 18, 33, 34}

// PDF renders the invoice as an A4 document. Long bills flow onto extra
// pages; the table header is repeated on every page.
func PDF(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 7, inv.ShopName, "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, line := range inv.AddressLines {
			pdf.CellFormat(0, 4.5, line, "", 1, "C", false, 0, "")
		}
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(95, 5, "Bill No: "+inv.BillNo, "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, "Date: "+inv.IssuedAt.Format("02/01/2006 3:04 PM"), "", 1, "R", false, 0, "")
		pdf.CellFormat(95, 5, "Customer: "+inv.CustomerName, "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, "Payment: "+inv.PaymentMode, "", 1, "R", false, 0, "")
		pdf.Ln(2)
		writePDFTableHeader(pdf)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	for i, l := range inv.Lines {
		pdf.CellFormat(pdfCols[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfCols[1], 6, l.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfCols[2], 6, l.Gram, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfCols[3], 6, fmt.Sprintf("%d", l.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfCols[4], 6, "Rs "+Rupees(l.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfCols[5], 6, "Rs "+Rupees(l.LineTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pdfCols[0]+pdfCols[1]+pdfCols[2], 7,
		fmt.Sprintf("Total Items: %d", len(inv.Lines)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfCols[3], 7, fmt.Sprintf("%d", inv.TotalQuantity()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfCols[4], 7, "Sub Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfCols[5], 7, "Rs "+Rupees(inv.SubTotal), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"#", "Item", "Gram", "Qty", "Price (Rs)", "Total (Rs)"}
	aligns := []string{"C", "L", "L", "R", "R", "R"}
	for i, h := range headers {
		pdf.CellFormat(pdfCols[i], 7, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)
}
