package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment rows are append-only; there is no edit or delete path.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`

	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMode string    `gorm:"type:varchar(10);not null" json:"paymentMode"` // Cash | UPI | Bank
	PaymentDate time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"paymentDate"`
	Notes       string    `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}
