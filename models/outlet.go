package models

import (
	"github.com/google/uuid"
)

type Outlet struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Prefix  string    `gorm:"uniqueIndex;not null" json:"prefix"` // e.g. "BD" -> invoice "BD0001"
	Address string    `json:"address"`
	Phone   string    `json:"phone"`

	Customers []Customer `gorm:"foreignKey:OutletID" json:"-"`
	Invoices  []Invoice  `gorm:"foreignKey:OutletID" json:"-"`
	Users     []User     `gorm:"foreignKey:OutletID" json:"-"`
}

// InvoiceSequence is the per-outlet invoice number counter. Exactly one row
// per outlet; incremented under a row lock, never read-then-written.
type InvoiceSequence struct {
	OutletID   uuid.UUID `gorm:"type:uuid;primary_key" json:"outletId"`
	LastNumber int64     `gorm:"not null;default:0" json:"lastNumber"`
}
