package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OutletID        uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_outlet_invoice_number,priority:1" json:"outletId"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	InvoiceNumber string    `gorm:"not null;uniqueIndex:idx_outlet_invoice_number,priority:2" json:"invoiceNumber"`
	Date          time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"date"`
	DeliveryDate  time.Time `gorm:"not null" json:"deliveryDate"`
	OrderType     string    `gorm:"type:varchar(10);default:'Normal'" json:"orderType"` // Normal | Urgent

	// Customer details are snapshotted at creation time so a printed invoice
	// survives later customer edits.
	CustomerName    string `gorm:"not null" json:"customerName"`
	CustomerPhone   string `gorm:"not null" json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	Notes         string `json:"notes"`
	DeliveryNotes string `json:"deliveryNotes"`

	// Snapshot taken from the items at creation; there is no item edit path,
	// so these are never recomputed.
	TotalPieces int     `gorm:"not null;default:0" json:"totalPieces"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	// Refreshed inside the same transaction as every payment insert.
	AmountPaid    float64 `gorm:"type:decimal(10,2);not null;default:0.0" json:"amountPaid"`
	BalanceAmount float64 `gorm:"type:decimal(10,2);not null;default:0.0" json:"balanceAmount"`

	InvoiceStatus string `gorm:"type:varchar(12);default:'Open'" json:"invoiceStatus"`   // Open | Partial | Delivered
	PaymentStatus string `gorm:"type:varchar(16);default:'Unpaid'" json:"paymentStatus"` // Unpaid | Partially Paid | Paid

	IsDeleted bool `gorm:"default:false;index" json:"isDeleted"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`

	ProductCategory string `gorm:"type:varchar(10);not null" json:"productCategory"` // Saree | Garment
	ProductType     string `gorm:"not null" json:"productType"`
	Service         string `gorm:"not null" json:"service"` // comma-joined selection

	Quantity int     `gorm:"not null" json:"quantity"`
	Rate     float64 `gorm:"type:decimal(10,2);not null;default:0.0" json:"rate"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	Status string `gorm:"type:varchar(12);default:'Received'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
