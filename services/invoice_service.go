// services/invoice_service.go
package services

import (
	"errors"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

type CreateInvoiceItemParams struct {
	ProductCategory string
	ProductType     string
	Services        []string
	Quantity        int
	Rate            float64
}

type CreateInvoiceParams struct {
	OutletID     uuid.UUID
	CustomerID   uuid.UUID
	Date         *time.Time
	DeliveryDate time.Time
	OrderType    string
	Notes        string
	Items        []CreateInvoiceItemParams
}

// Create allocates the invoice number, snapshots the customer and item
// totals, and persists invoice + items in one transaction.
func (s *InvoiceService) Create(caller Caller, params CreateInvoiceParams) (*models.Invoice, error) {
	if !caller.CanAccess(params.OutletID) {
		return nil, utils.PermissionError("no access to this outlet")
	}
	if params.OrderType == "" {
		params.OrderType = models.OrderTypeNormal
	}
	if !models.ValidOrderType(params.OrderType) {
		return nil, utils.ValidationError("invalid order type: %s", params.OrderType)
	}
	if len(params.Items) == 0 {
		return nil, utils.ValidationError("invoice needs at least one item")
	}
	if params.DeliveryDate.IsZero() {
		return nil, utils.ValidationError("delivery date is required")
	}

	var items []models.InvoiceItem
	totalPieces := 0
	var totalAmount float64
	for _, item := range params.Items {
		if item.ProductCategory != models.CategorySaree && item.ProductCategory != models.CategoryGarment {
			return nil, utils.ValidationError("invalid product category: %s", item.ProductCategory)
		}
		if !models.ValidProductType(item.ProductCategory, item.ProductType) {
			return nil, utils.ValidationError("invalid product type: %s", item.ProductType)
		}
		if len(item.Services) == 0 {
			return nil, utils.ValidationError("select at least one service per item")
		}
		for _, svc := range item.Services {
			if !models.ValidService(svc) {
				return nil, utils.ValidationError("invalid service: %s", svc)
			}
		}
		if item.Quantity <= 0 {
			return nil, utils.ValidationError("quantity must be positive")
		}
		if item.Rate < 0 {
			return nil, utils.ValidationError("rate cannot be negative")
		}

		rate := item.Rate
		if !caller.CanWriteRate() {
			rate = 0
		}

		itemTotal := float64(item.Quantity) * rate
		totalPieces += item.Quantity
		totalAmount += itemTotal

		items = append(items, models.InvoiceItem{
			ID:              uuid.New(),
			ProductCategory: item.ProductCategory,
			ProductType:     item.ProductType,
			Service:         strings.Join(item.Services, ", "),
			Quantity:        item.Quantity,
			Rate:            rate,
			Total:           itemTotal,
			Status:          models.ItemStatusReceived,
		})
	}

	var customer models.Customer
	if err := s.db.Where("outlet_id = ? AND id = ?", params.OutletID, params.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("customer not found")
		}
		return nil, err
	}

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}

	invoice := models.Invoice{
		ID:              uuid.New(),
		OutletID:        params.OutletID,
		CustomerID:      customer.ID,
		CreatedByUserID: caller.UserID,
		Date:            date,
		DeliveryDate:    params.DeliveryDate,
		OrderType:       params.OrderType,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Notes:           params.Notes,
		TotalPieces:     totalPieces,
		TotalAmount:     totalAmount,
		AmountPaid:      0,
		BalanceAmount:   totalAmount,
		InvoiceStatus:   models.InvoiceStatusOpen,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Items:           items,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := NextInvoiceNumber(tx, params.OutletID)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// Get returns a live invoice with its items and payments.
func (s *InvoiceService) Get(caller Caller, invoiceID uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Items").Preload("Payments").
		Where("id = ? AND is_deleted = ?", invoiceID, false).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("invoice not found")
		}
		return nil, err
	}
	if !caller.CanAccess(invoice.OutletID) {
		return nil, utils.PermissionError("no access to this outlet")
	}
	return &invoice, nil
}

type ListInvoicesFilter struct {
	OutletID      *uuid.UUID
	InvoiceStatus string
	PaymentStatus string
}

// List returns the caller's visible invoices, newest first. Staff are pinned
// to their own outlet regardless of the filter.
func (s *InvoiceService) List(caller Caller, filter ListInvoicesFilter) ([]models.Invoice, error) {
	query := s.db.Preload("Items").Where("is_deleted = ?", false)

	if caller.IsAdmin() {
		if filter.OutletID != nil {
			query = query.Where("outlet_id = ?", *filter.OutletID)
		}
	} else {
		if caller.OutletID == nil {
			return nil, utils.PermissionError("staff account has no outlet")
		}
		if filter.OutletID != nil && *filter.OutletID != *caller.OutletID {
			return nil, utils.PermissionError("no access to this outlet")
		}
		query = query.Where("outlet_id = ?", *caller.OutletID)
	}

	if filter.InvoiceStatus != "" {
		query = query.Where("invoice_status = ?", filter.InvoiceStatus)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}

	var invoices []models.Invoice
	if err := query.Order("date DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// SetItemStatus updates one item's fulfillment status and recomputes the
// owning invoice's status from the full item set, in a single transaction.
// Staff may only mark an item Delivered from Ready; admins skip the gate.
func (s *InvoiceService) SetItemStatus(caller Caller, itemID uuid.UUID, newStatus string) (*models.Invoice, error) {
	if !models.ValidItemStatus(newStatus) {
		return nil, utils.ValidationError("invalid item status: %s", newStatus)
	}

	var result models.Invoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.InvoiceItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("invoice item not found")
			}
			return err
		}

		var invoice models.Invoice
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, "id = ? AND is_deleted = ?", item.InvoiceID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("invoice not found")
			}
			return err
		}
		if !caller.CanAccess(invoice.OutletID) {
			return utils.PermissionError("no access to this outlet")
		}
		if !caller.IsAdmin() && newStatus == models.ItemStatusDelivered && item.Status != models.ItemStatusReady {
			return utils.PermissionError("item must be Ready before marking Delivered")
		}

		if err := tx.Model(&models.InvoiceItem{}).
			Where("id = ?", itemID).
			Update("status", newStatus).Error; err != nil {
			return err
		}

		var items []models.InvoiceItem
		if err := tx.Find(&items, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}
		status := models.DeriveInvoiceStatus(items)
		if err := tx.Model(&models.Invoice{}).
			Where("id = ?", invoice.ID).
			Update("invoice_status", status).Error; err != nil {
			return err
		}

		invoice.InvoiceStatus = status
		invoice.Items = items
		result = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateDeliveryNotes sets the free-form delivery notes on an invoice.
func (s *InvoiceService) UpdateDeliveryNotes(caller Caller, invoiceID uuid.UUID, notes string) error {
	invoice, err := s.Get(caller, invoiceID)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Update("delivery_notes", notes).Error
}

// Delete soft-deletes an invoice; rows are never physically removed.
func (s *InvoiceService) Delete(caller Caller, invoiceID uuid.UUID) error {
	if !caller.CanDelete() {
		return utils.PermissionError("only admins can delete invoices")
	}
	invoice, err := s.Get(caller, invoiceID)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Update("is_deleted", true).Error
}
