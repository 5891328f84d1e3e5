// services/customer_service.go
package services

import (
	"errors"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

type CustomerParams struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

func (s *CustomerService) Create(caller Caller, outletID uuid.UUID, params CustomerParams) (*models.Customer, error) {
	if !caller.CanAccess(outletID) {
		return nil, utils.PermissionError("no access to this outlet")
	}
	if params.Name == "" {
		return nil, utils.ValidationError("customer name is required")
	}
	if !utils.ValidatePhone(params.Phone) {
		return nil, utils.ValidationError("invalid phone number format")
	}

	var existing models.Customer
	err := s.db.Where("outlet_id = ? AND phone = ?", outletID, params.Phone).First(&existing).Error
	if err == nil {
		return nil, utils.ConflictError("customer with this phone number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := models.Customer{
		ID:              uuid.New(),
		OutletID:        outletID,
		CreatedByUserID: caller.UserID,
		Name:            params.Name,
		Phone:           params.Phone,
		Address:         params.Address,
		Notes:           params.Notes,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Get(caller Caller, customerID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("customer not found")
		}
		return nil, err
	}
	if !caller.CanAccess(customer.OutletID) {
		return nil, utils.PermissionError("no access to this outlet")
	}
	return &customer, nil
}

// List returns customers visible to the caller; admins may narrow to one
// outlet, staff always see only their own.
func (s *CustomerService) List(caller Caller, outletID *uuid.UUID) ([]models.Customer, error) {
	query := s.db.Model(&models.Customer{})

	if caller.IsAdmin() {
		if outletID != nil {
			query = query.Where("outlet_id = ?", *outletID)
		}
	} else {
		if caller.OutletID == nil {
			return nil, utils.PermissionError("staff account has no outlet")
		}
		query = query.Where("outlet_id = ?", *caller.OutletID)
	}

	var customers []models.Customer
	if err := query.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

type UpdateCustomerParams struct {
	Name    *string
	Phone   *string
	Address *string
	Notes   *string
}

func (s *CustomerService) Update(caller Caller, customerID uuid.UUID, params UpdateCustomerParams) (*models.Customer, error) {
	customer, err := s.Get(caller, customerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if params.Name != nil {
		if *params.Name == "" {
			return nil, utils.ValidationError("customer name is required")
		}
		updates["name"] = *params.Name
	}
	if params.Phone != nil {
		if !utils.ValidatePhone(*params.Phone) {
			return nil, utils.ValidationError("invalid phone number format")
		}
		var existing models.Customer
		err := s.db.Where("outlet_id = ? AND phone = ? AND id <> ?", customer.OutletID, *params.Phone, customer.ID).
			First(&existing).Error
		if err == nil {
			return nil, utils.ConflictError("customer with this phone number already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["phone"] = *params.Phone
	}
	if params.Address != nil {
		updates["address"] = *params.Address
	}
	if params.Notes != nil {
		updates["notes"] = *params.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(customer).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return customer, nil
}

// Delete removes a customer. Admin-only, and refused outright while any
// invoice still references the customer.
func (s *CustomerService) Delete(caller Caller, customerID uuid.UUID) error {
	if !caller.CanDelete() {
		return utils.PermissionError("only admins can delete customers")
	}
	customer, err := s.Get(caller, customerID)
	if err != nil {
		return err
	}

	var invoiceCount int64
	if err := s.db.Model(&models.Invoice{}).
		Where("customer_id = ?", customer.ID).
		Count(&invoiceCount).Error; err != nil {
		return err
	}
	if invoiceCount > 0 {
		return utils.ConflictError("customer has invoices and cannot be deleted")
	}

	return s.db.Delete(customer).Error
}

type CustomerSummary struct {
	Customer    *models.Customer `json:"customer"`
	TotalBilled float64          `json:"totalBilled"`
	TotalPaid   float64          `json:"totalPaid"`
	TotalDue    float64          `json:"totalDue"`
	Invoices    []models.Invoice `json:"invoices"`
}

// Summary aggregates a customer's billed/paid/due figures across their live
// invoices.
func (s *CustomerService) Summary(caller Caller, customerID uuid.UUID) (*CustomerSummary, error) {
	customer, err := s.Get(caller, customerID)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.db.Where("customer_id = ? AND is_deleted = ?", customer.ID, false).
		Order("date DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	summary := CustomerSummary{Customer: customer, Invoices: invoices}
	for _, inv := range invoices {
		summary.TotalBilled += inv.TotalAmount
		summary.TotalPaid += inv.AmountPaid
		summary.TotalDue += inv.BalanceAmount
	}
	return &summary, nil
}
