// controllers/invoice.go
package controllers

import (
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	ProductCategory string   `json:"productCategory" binding:"required"`
	ProductType     string   `json:"productType" binding:"required"`
	Services        []string `json:"services" binding:"required,min=1"`
	Quantity        int      `json:"quantity" binding:"required,min=1"`
	Rate            float64  `json:"rate" binding:"min=0"` // ignored for staff callers
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	OutletID     *uuid.UUID         `json:"outletId"`
	CustomerID   uuid.UUID          `json:"customerId" binding:"required"`
	Date         *time.Time         `json:"date"`
	DeliveryDate time.Time          `json:"deliveryDate" binding:"required"`
	OrderType    string             `json:"orderType"`
	Notes        string             `json:"notes"`
	Items        []InvoiceItemInput `json:"items" binding:"required,min=1"`
}

// UpdateItemStatusInput defines the expected JSON for an item status change
type UpdateItemStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDeliveryNotesInput defines the expected JSON for delivery notes
type UpdateDeliveryNotesInput struct {
	DeliveryNotes string `json:"deliveryNotes"`
}

// CreateInvoice creates a new invoice with its items
func CreateInvoice(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	outletID, err := resolveOutletID(caller, input.OutletID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	params := services.CreateInvoiceParams{
		OutletID:     outletID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
		DeliveryDate: input.DeliveryDate,
		OrderType:    input.OrderType,
		Notes:        input.Notes,
	}
	for _, item := range input.Items {
		params.Items = append(params.Items, services.CreateInvoiceItemParams{
			ProductCategory: item.ProductCategory,
			ProductType:     item.ProductType,
			Services:        item.Services,
			Quantity:        item.Quantity,
			Rate:            item.Rate,
		})
	}

	invoice, err := services.NewInvoiceService(config.DB).Create(caller, params)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves invoices visible to the caller
func GetInvoices(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}

	filter := services.ListInvoicesFilter{
		InvoiceStatus: c.Query("invoice_status"),
		PaymentStatus: c.Query("payment_status"),
	}
	if raw := c.Query("outlet_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid outlet_id format")
			return
		}
		filter.OutletID = &id
	}

	invoices, err := services.NewInvoiceService(config.DB).List(caller, filter)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice with items and payments
func GetInvoice(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).Get(caller, invoiceID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateItemStatus changes one item's fulfillment status; the invoice status
// rollup happens in the same transaction
func UpdateItemStatus(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateItemStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).SetItemStatus(caller, itemID, input.Status)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateDeliveryNotes sets the delivery notes on an invoice
func UpdateDeliveryNotes(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateDeliveryNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := services.NewInvoiceService(config.DB).UpdateDeliveryNotes(caller, invoiceID, input.DeliveryNotes); err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivery notes updated"})
}

// DeleteInvoice soft-deletes an invoice. Admin only.
func DeleteInvoice(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := services.NewInvoiceService(config.DB).Delete(caller, invoiceID); err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}
