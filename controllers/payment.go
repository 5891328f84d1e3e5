// controllers/payment.go
package controllers

import (
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
)

// AddPaymentInput defines the expected JSON structure for recording a payment
type AddPaymentInput struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	PaymentMode string     `json:"paymentMode" binding:"required"`
	PaymentDate *time.Time `json:"paymentDate"`
	Notes       string     `json:"notes"`
}

// AddPayment records a payment against an invoice
func AddPayment(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input AddPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := services.NewPaymentService(config.DB).Add(caller, invoiceID, services.AddPaymentParams{
		Amount:      input.Amount,
		PaymentMode: input.PaymentMode,
		PaymentDate: input.PaymentDate,
		Notes:       input.Notes,
	})
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments lists an invoice's payments
func GetPayments(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	payments, err := services.NewPaymentService(config.DB).List(caller, invoiceID)
	if err != nil {
		utils.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
