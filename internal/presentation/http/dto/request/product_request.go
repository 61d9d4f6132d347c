package request

// CreateVariantRequest is one pack size in a create request
type CreateVariantRequest struct {
	Gram          string  `json:"gram" binding:"required,max=50"`
	Price         float64 `json:"price" binding:"min=0"`
	Stock         int     `json:"stock" binding:"min=0"`
	Barcode       string  `json:"barCode" binding:"omitempty,max=100"`
	BarcodeNumber string  `json:"barCodenumber" binding:"omitempty,max=100"`
}

// CreateProductRequest represents a catalog item creation request
type CreateProductRequest struct {
	ItemName string                 `json:"itemName" binding:"required,min=1,max=255"`
	Type     string                 `json:"type" binding:"omitempty,max=100"`
	Image    *string                `json:"image"`
	Variants []CreateVariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// UpdateVariantPriceRequest changes one variant's price
type UpdateVariantPriceRequest struct {
	Price float64 `json:"price" binding:"min=0"`
}

// UpdateVariantStockRequest sets one variant's stock
type UpdateVariantStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// UpdateItemNameRequest renames a catalog item
type UpdateItemNameRequest struct {
	ItemName string `json:"itemName" binding:"required,min=1,max=255"`
}

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Type      string `form:"type"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
