package enum

// CodeKind identifies which catalog code a lookup matched on
type CodeKind int

const (
	// CodeKindBarcode is the scanner-read CODE128 value.
	CodeKindBarcode CodeKind = 0
	// CodeKindBarcodeNumber is the human-typed numeric code printed under
	// the bars.
	CodeKindBarcodeNumber CodeKind = 1
)

func (k CodeKind) String() string {
	return [...]string{"barcode", "barcodenumber"}[k]
}
