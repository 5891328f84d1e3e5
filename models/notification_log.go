package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLog records every delivery-reminder message attempt.
type NotificationLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OutletID  uuid.UUID `gorm:"type:uuid;index;not null" json:"outletId"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`

	Phone        string    `gorm:"not null" json:"phone"`
	Message      string    `gorm:"not null" json:"message"`
	Channel      string    `gorm:"type:varchar(10);not null" json:"channel"` // whatsapp | sms
	Status       string    `gorm:"type:varchar(10);not null" json:"status"`  // sent | failed
	ErrorMessage string    `json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`
}
