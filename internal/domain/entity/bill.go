package entity

import (
	"encoding/json"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a finalized sale. Once created it is immutable: every
// invoice rendering (preview, print window, PDF, thermal) reads from this
// record, so all of them show the same lines and totals.
type Bill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillNo        string             `gorm:"size:100;unique;not null" json:"billNo"`
	CustomerName  string             `gorm:"size:255" json:"customerName"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0;index" json:"paymentMethod"`
	TotalItems    int                `gorm:"default:0" json:"totalItems"`
	TotalQuantity int                `gorm:"default:0" json:"totalQuantity"`
	SubTotal      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"subTotal"`
	}{
		Alias:    Alias(b),
		SubTotal: float64(b.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill. Name, gram, price and both codes are
// copied from the variant at sale time so later catalog edits never change
// what a stored bill says.
type BillItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	VariantID     *uuid.UUID `gorm:"type:uuid;index" json:"variantId,omitempty"`
	Position      int        `gorm:"not null;default:0" json:"-"` // first-scan order within the bill
	ItemName      string     `gorm:"size:255;not null" json:"itemName"`
	Gram          string     `gorm:"size:50" json:"gram"`
	Quantity      int        `gorm:"not null" json:"quantity"`
	Price         int64      `gorm:"default:0" json:"-"` // Unit price in cents, excluded from JSON
	Total         int64      `gorm:"default:0" json:"-"` // Line total in cents, excluded from JSON
	Barcode       string     `gorm:"size:100" json:"barcode"`
	BarcodeNumber string     `gorm:"size:100" json:"barcodenumber"`
	CreatedAt     time.Time  `json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
		Total: float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
