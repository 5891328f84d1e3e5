// controllers/customer.go
package controllers

import (
	"net/http"

	"laundrypro-backend/config"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	OutletID *uuid.UUID `json:"outletId"` // admins must pass it; staff default to their own
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone" binding:"required"`
	Address  string     `json:"address"`
	Notes    string     `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// resolveOutletID decides which outlet a mutation targets: staff always use
// their own, admins must name one.
func resolveOutletID(caller services.Caller, requested *uuid.UUID) (uuid.UUID, error) {
	if caller.IsAdmin() {
		if requested == nil {
			return uuid.Nil, utils.ValidationError("outletId is required for admin requests")
		}
		return *requested, nil
	}
	if caller.OutletID == nil {
		return uuid.Nil, utils.PermissionError("staff account has no outlet")
	}
	return *caller.OutletID, nil
}

// CreateCustomer creates a new customer for an outlet
func CreateCustomer(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	outletID, err := resolveOutletID(caller, input.OutletID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	customer, err := services.NewCustomerService(config.DB).Create(caller, outletID, services.CustomerParams{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	})
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves customers visible to the caller
func GetCustomers(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}

	var outletFilter *uuid.UUID
	if raw := c.Query("outlet_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid outlet_id format")
			return
		}
		outletFilter = &id
	}

	customers, err := services.NewCustomerService(config.DB).List(caller, outletFilter)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := services.NewCustomerService(config.DB).Get(caller, customerID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomerSummary returns the customer plus billed/paid/due totals
func GetCustomerSummary(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	summary, err := services.NewCustomerService(config.DB).Summary(caller, customerID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := services.NewCustomerService(config.DB).Update(caller, customerID, services.UpdateCustomerParams{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	})
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer with no invoices. Admin only.
func DeleteCustomer(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := services.NewCustomerService(config.DB).Delete(caller, customerID); err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
