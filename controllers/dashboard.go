// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecentInvoice struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerName  string    `json:"customerName"`
	TotalPieces   int       `json:"totalPieces"`
	TotalAmount   float64   `json:"totalAmount"`
	InvoiceStatus string    `json:"invoiceStatus"`
	PaymentStatus string    `json:"paymentStatus"`
	Date          time.Time `json:"date"`
}

// dashboardScope narrows queries to the outlets the caller may see.
func dashboardScope(caller services.Caller, query *gorm.DB) *gorm.DB {
	if caller.IsAdmin() {
		return query
	}
	return query.Where("outlet_id = ?", *caller.OutletID)
}

// GetDashboardOverview returns today's workload and money figures
func GetDashboardOverview(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() && caller.OutletID == nil {
		utils.RespondWithError(c, http.StatusForbidden, "Staff account has no outlet")
		return
	}

	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	// Today's intake
	var todayInvoices int64
	var todayPieces int64
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ? AND date >= ? AND date < ?", false, today, tomorrow).
		Count(&todayInvoices)
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ? AND date >= ? AND date < ?", false, today, tomorrow).
		Select("COALESCE(SUM(total_pieces), 0)").Scan(&todayPieces)

	// Today's collections come from payments, not invoice totals
	var todayCollected float64
	paymentQuery := config.DB.Model(&models.Payment{}).
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Where("payments.payment_date >= ? AND payments.payment_date < ?", today, tomorrow)
	if !caller.IsAdmin() {
		paymentQuery = paymentQuery.Where("invoices.outlet_id = ?", *caller.OutletID)
	}
	paymentQuery.Select("COALESCE(SUM(payments.amount), 0)").Scan(&todayCollected)

	// Workload counts
	var openInvoices, partialInvoices int64
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ? AND invoice_status = ?", false, models.InvoiceStatusOpen).
		Count(&openInvoices)
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ? AND invoice_status = ?", false, models.InvoiceStatusPartial).
		Count(&partialInvoices)

	// Deliveries that have slipped
	var overdueDeliveries int64
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ? AND invoice_status <> ? AND delivery_date < ?",
			false, models.InvoiceStatusDelivered, today).
		Count(&overdueDeliveries)

	// Money still on the street
	var outstandingBalance float64
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ?", false).
		Select("COALESCE(SUM(balance_amount), 0)").Scan(&outstandingBalance)

	// Latest activity
	var recentInvoices []RecentInvoice
	dashboardScope(caller, config.DB.Model(&models.Invoice{})).
		Where("is_deleted = ?", false).
		Order("date DESC").Limit(5).
		Select("id, invoice_number, customer_name, total_pieces, total_amount, invoice_status, payment_status, date").
		Scan(&recentInvoices)

	c.JSON(http.StatusOK, gin.H{
		"todayInvoices":      todayInvoices,
		"todayPieces":        todayPieces,
		"todayCollected":     todayCollected,
		"openInvoices":       openInvoices,
		"partialInvoices":    partialInvoices,
		"overdueDeliveries":  overdueDeliveries,
		"outstandingBalance": outstandingBalance,
		"recentInvoices":     recentInvoices,
	})
}
