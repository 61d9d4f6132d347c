package request

// BillItemRequest is one submitted line. The register sends both codes on
// every line; the server resolves against the scanner value first.
type BillItemRequest struct {
	Barcode       string `json:"barcode" binding:"omitempty,max=100"`
	BarcodeNumber string `json:"barcodenumber" binding:"omitempty,max=100"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

// CreateBillRequest represents the create bill request
type CreateBillRequest struct {
	CustomerName  string            `json:"customerName" binding:"omitempty,max=255"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Items         []BillItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BillFilterRequest represents bill listing filters
type BillFilterRequest struct {
	Search        string `form:"search"`
	PaymentMethod string `form:"payment_method"`
	Period        string `form:"period"`
	From          string `form:"from"`
	To            string `form:"to"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// StatsFilterRequest represents the reporting window selectors. The trend
// endpoint accepts "range" as an alias for "period".
type StatsFilterRequest struct {
	Period string `form:"period"`
	Range  string `form:"range"`
	From   string `form:"from"`
	To     string `form:"to"`
	Limit  int    `form:"limit"`
}

// CheckoutRequest finishes a register session
type CheckoutRequest struct {
	CustomerName  string `json:"customerName" binding:"omitempty,max=255"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ScanRequest adds one scan to a register session
type ScanRequest struct {
	Barcode       string `json:"barcode" binding:"omitempty,max=100"`
	BarcodeNumber string `json:"barcodenumber" binding:"omitempty,max=100"`
}

// UpdateShopProfileRequest edits the invoice header
type UpdateShopProfileRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	AddressLine1 string `json:"address_line1" binding:"omitempty,max=255"`
	AddressLine2 string `json:"address_line2" binding:"omitempty,max=255"`
	Phone        string `json:"phone" binding:"omitempty,max=50"`
	Email        string `json:"email" binding:"omitempty,max=255"`
	GSTIN        string `json:"gstin" binding:"omitempty,max=50"`
}
