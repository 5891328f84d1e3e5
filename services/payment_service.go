// services/payment_service.go
package services

import (
	"errors"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type AddPaymentParams struct {
	Amount      float64
	PaymentMode string
	PaymentDate *time.Time
	Notes       string
}

// Add appends a payment and refreshes the invoice's paid/balance/payment
// status in the same transaction. The invoice row is locked while the
// balance check runs, so two concurrent payments cannot both pass it.
func (s *PaymentService) Add(caller Caller, invoiceID uuid.UUID, params AddPaymentParams) (*models.Payment, error) {
	if params.Amount <= 0 {
		return nil, utils.ValidationError("payment amount must be positive")
	}
	if !models.ValidPaymentMode(params.PaymentMode) {
		return nil, utils.ValidationError("invalid payment mode: %s", params.PaymentMode)
	}

	paymentDate := time.Now()
	if params.PaymentDate != nil {
		paymentDate = *params.PaymentDate
	}

	payment := models.Payment{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		Amount:      params.Amount,
		PaymentMode: params.PaymentMode,
		PaymentDate: paymentDate,
		Notes:       params.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, "id = ? AND is_deleted = ?", invoiceID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("invoice not found")
			}
			return err
		}
		if !caller.CanAccess(invoice.OutletID) {
			return utils.PermissionError("no access to this outlet")
		}
		if params.Amount > invoice.BalanceAmount {
			return utils.ValidationError("payment amount exceeds outstanding balance")
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		newPaid := invoice.AmountPaid + params.Amount
		newBalance := invoice.TotalAmount - newPaid
		return tx.Model(&models.Invoice{}).
			Where("id = ?", invoice.ID).
			Updates(map[string]interface{}{
				"amount_paid":    newPaid,
				"balance_amount": newBalance,
				"payment_status": models.DerivePaymentStatus(invoice.TotalAmount, newPaid),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// List returns an invoice's payments, oldest first.
func (s *PaymentService) List(caller Caller, invoiceID uuid.UUID) ([]models.Payment, error) {
	invoice, err := NewInvoiceService(s.db).Get(caller, invoiceID)
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := s.db.Where("invoice_id = ?", invoice.ID).
		Order("payment_date ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
