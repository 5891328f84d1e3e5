package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OutletID        uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_outlet_phone,priority:1" json:"outletId"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null;uniqueIndex:idx_outlet_phone,priority:2" json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`

	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
