package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopProfile holds the header printed on every invoice. A single row is
// seeded on first boot and edited from the settings screen.
type ShopProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	AddressLine1 string    `gorm:"size:255" json:"address_line1"`
	AddressLine2 string    `gorm:"size:255" json:"address_line2"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Email        string    `gorm:"size:255" json:"email"`
	GSTIN        string    `gorm:"size:50" json:"gstin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a shop profile
func (s *ShopProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopProfile model
func (ShopProfile) TableName() string {
	return "shop_profiles"
}

// AddressLines returns the non-empty header lines under the shop name, in
// print order.
func (s *ShopProfile) AddressLines() []string {
	lines := make([]string, 0, 4)
	for _, l := range []string{s.AddressLine1, s.AddressLine2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if s.Phone != "" || s.Email != "" {
		contact := ""
		switch {
		case s.Phone != "" && s.Email != "":
			contact = "Phone: " + s.Phone + " | " + s.Email
		case s.Phone != "":
			contact = "Phone: " + s.Phone
		default:
			contact = s.Email
		}
		lines = append(lines, contact)
	}
	if s.GSTIN != "" {
		lines = append(lines, "GSTIN: "+s.GSTIN)
	}
	return lines
}
