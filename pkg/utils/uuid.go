package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBillNo generates a unique bill number, e.g. "BILL-9F2C41AB"
func GenerateBillNo() string {
	return "BILL-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateBarcodeNumber generates a numeric barcode value for variants that
// were created without one. It is a 12-digit string derived from random
// UUID bytes, so collisions across a single shop's catalog are unlikely.
func GenerateBarcodeNumber() string {
	id := uuid.New()
	var b strings.Builder
	for i := 0; b.Len() < 12 && i < len(id); i++ {
		b.WriteByte('0' + id[i]%10)
	}
	return "2" + b.String()[:11]
}
