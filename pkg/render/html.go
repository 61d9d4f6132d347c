package render

import (
	"bytes"
	"html/template"
)

var htmlFuncs = template.FuncMap{
	"rupees": Rupees,
	// add1 turns a zero-based range index into the printed serial number.
	"add1": func(i int) int { return i + 1 },
}

// invoiceTmpl is the printable invoice document. It is a self-contained page
// so the client can open it in a new window and call print on it.
var invoiceTmpl = template.Must(template.New("invoice").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Bill {{.BillNo}}</title>
<style>
  body { font-family: Arial, sans-serif; font-size: 13px; margin: 24px; color: #111; }
  .shop { text-align: center; margin-bottom: 12px; }
  .shop h1 { font-size: 18px; margin: 0 0 4px 0; }
  .shop p { margin: 2px 0; }
  .meta { display: flex; justify-content: space-between; margin: 12px 0; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #444; padding: 5px 8px; text-align: left; }
  th { background: #f0f0f0; }
  td.num, th.num { text-align: right; }
  tfoot td { font-weight: bold; }
  @media print { body { margin: 0; } }
</style>
</head>
<body onload="if (window.location.search.indexOf('print=1') !== -1) { window.print(); }">
<div class="shop">
  <h1>{{.ShopName}}</h1>
  {{- range .AddressLines}}
  <p>{{.}}</p>
  {{- end}}
</div>
<div class="meta">
  <div>
    <p><strong>Bill No:</strong> {{.BillNo}}</p>
    <p><strong>Customer:</strong> {{.CustomerName}}</p>
  </div>
  <div>
    <p><strong>Date:</strong> {{.IssuedAt.Format "02/01/2006 3:04 PM"}}</p>
    <p><strong>Payment:</strong> {{.PaymentMode}}</p>
  </div>
</div>
<table>
<thead>
<tr><th>#</th><th>Item</th><th>Gram</th><th class="num">Qty</th><th class="num">Price (&#8377;)</th><th class="num">Total (&#8377;)</th></tr>
</thead>
<tbody>
{{- range $i, $l := .Lines}}
<tr>
  <td>{{add1 $i}}</td>
  <td>{{$l.Name}}</td>
  <td>{{$l.Gram}}</td>
  <td class="num">{{$l.Quantity}}</td>
  <td class="num">{{rupees $l.UnitPrice}}</td>
  <td class="num">{{rupees $l.LineTotal}}</td>
</tr>
{{- end}}
</tbody>
<tfoot>
<tr><td colspan="3">Total Items: {{len .Lines}}</td><td class="num">{{.TotalQuantity}}</td><td class="num">Sub Total</td><td class="num">&#8377; {{rupees .SubTotal}}</td></tr>
</tfoot>
</table>
</body>
</html>
`))

// HTML renders the invoice as a standalone printable HTML document.
func HTML(inv Invoice) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, inv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
