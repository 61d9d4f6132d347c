package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog item, e.g. "Kaju Katli". The sellable units
// are its variants, one per pack size.
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ItemName  string         `gorm:"size:255;not null;index" json:"itemName"`
	Type      string         `gorm:"size:100" json:"type"`
	ImageURL  *string        `gorm:"size:512" json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductVariant is one sellable pack size of a product. Both codes are
// unique across the catalog: Barcode is the scanner-read CODE128 value and
// BarcodeNumber is the digits printed under the bars.
type ProductVariant struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"productId"`
	Gram          string         `gorm:"size:50;not null" json:"gram"`
	Price         int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Stock         int            `gorm:"default:0" json:"stock"`
	Barcode       string         `gorm:"size:100;uniqueIndex" json:"barCode"`
	BarcodeNumber string         `gorm:"size:100;uniqueIndex" json:"barCodenumber"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses.
// ItemName rides along when the product relation is loaded so a barcode
// lookup answers with the full line identity in one payload.
func (v ProductVariant) MarshalJSON() ([]byte, error) {
	type Alias ProductVariant
	return json.Marshal(&struct {
		Alias
		Price    float64 `json:"price"`
		ItemName string  `json:"itemName,omitempty"`
	}{
		Alias:    Alias(v),
		Price:    float64(v.Price) / 100,
		ItemName: v.Product.ItemName,
	})
}

// BeforeCreate generates a UUID before creating a new variant
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductVariant model
func (ProductVariant) TableName() string {
	return "product_variants"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (v *ProductVariant) GetPriceDecimal() float64 {
	return float64(v.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (v *ProductVariant) SetPriceFromDecimal(price float64) {
	v.Price = int64(price*100 + 0.5)
}
