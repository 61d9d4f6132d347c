package entity

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a console operator. Accounts are created on first Google sign-in;
// there is no password login. The PIN is a second step the console asks for
// before exposing billing actions.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GoogleID    string         `gorm:"size:100;uniqueIndex" json:"-"`
	Email       string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name        string         `gorm:"size:255" json:"name"`
	Picture     *string        `gorm:"size:512" json:"picture,omitempty"`
	PinHash     *string        `gorm:"size:255" json:"-"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasPin reports whether the user has completed PIN setup.
func (u *User) HasPin() bool {
	return u.PinHash != nil && *u.PinHash != ""
}

// SetPin hashes and stores the PIN.
func (u *User) SetPin(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s := string(hash)
	u.PinHash = &s
	return nil
}

// CheckPin verifies the PIN against the stored hash.
func (u *User) CheckPin(pin string) bool {
	if !u.HasPin() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.PinHash), []byte(pin)) == nil
}
