// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions
type ReportController struct{}

type ServiceSummary struct {
	Service string  `json:"service"`
	Pieces  int     `json:"pieces"`
	Revenue float64 `json:"revenue"`
}

type TopCustomer struct {
	CustomerName string  `json:"customerName"`
	Invoices     int     `json:"invoices"`
	Billed       float64 `json:"billed"`
}

type QuickStatistics struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalInvoices  int64   `json:"totalInvoices"`
	TotalPieces    int64   `json:"totalPieces"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

func (rc *ReportController) revenueBetween(caller services.Caller, from, to time.Time) float64 {
	var revenue float64
	query := config.DB.Model(&models.Invoice{}).
		Where("is_deleted = ? AND date >= ? AND date < ?", false, from, to)
	if !caller.IsAdmin() {
		query = query.Where("outlet_id = ?", *caller.OutletID)
	}
	query.Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)
	return revenue
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// GetReportAnalytics returns revenue growth, top services and top customers
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	caller, ok := CurrentCaller(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() && caller.OutletID == nil {
		utils.RespondWithError(c, http.StatusForbidden, "Staff account has no outlet")
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	quarterMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
	quarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	prevQuarterStart := quarterStart.AddDate(0, -3, 0)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	prevYearStart := yearStart.AddDate(-1, 0, 0)

	monthRevenue := rc.revenueBetween(caller, monthStart, now)
	prevMonthRevenue := rc.revenueBetween(caller, prevMonthStart, monthStart)
	quarterRevenue := rc.revenueBetween(caller, quarterStart, now)
	prevQuarterRevenue := rc.revenueBetween(caller, prevQuarterStart, quarterStart)
	yearRevenue := rc.revenueBetween(caller, yearStart, now)
	prevYearRevenue := rc.revenueBetween(caller, prevYearStart, yearStart)

	scoped := func(query *gorm.DB) *gorm.DB {
		if caller.IsAdmin() {
			return query
		}
		return query.Where("invoices.outlet_id = ?", *caller.OutletID)
	}

	// Service mix across item rows; an item's comma-joined services count as
	// one line for its full total, matching how the business bills them.
	var topServices []ServiceSummary
	scoped(config.DB.Model(&models.InvoiceItem{}).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.is_deleted = ?", false)).
		Select("invoice_items.service AS service, SUM(invoice_items.quantity) AS pieces, COALESCE(SUM(invoice_items.total), 0) AS revenue").
		Group("invoice_items.service").
		Order("revenue DESC").Limit(5).
		Scan(&topServices)

	var topCustomers []TopCustomer
	scoped(config.DB.Model(&models.Invoice{}).
		Where("invoices.is_deleted = ?", false)).
		Select("customer_name, COUNT(*) AS invoices, COALESCE(SUM(total_amount), 0) AS billed").
		Group("customer_name").
		Order("billed DESC").Limit(5).
		Scan(&topCustomers)

	var stats QuickStatistics
	customerQuery := config.DB.Model(&models.Customer{})
	invoiceQuery := config.DB.Model(&models.Invoice{}).Where("is_deleted = ?", false)
	if !caller.IsAdmin() {
		customerQuery = customerQuery.Where("outlet_id = ?", *caller.OutletID)
		invoiceQuery = invoiceQuery.Where("outlet_id = ?", *caller.OutletID)
	}
	customerQuery.Count(&stats.TotalCustomers)
	invoiceQuery.Count(&stats.TotalInvoices)

	invoiceTotals := config.DB.Model(&models.Invoice{}).Where("is_deleted = ?", false)
	if !caller.IsAdmin() {
		invoiceTotals = invoiceTotals.Where("outlet_id = ?", *caller.OutletID)
	}
	invoiceTotals.Select("COALESCE(SUM(total_pieces), 0)").Scan(&stats.TotalPieces)
	if stats.TotalInvoices > 0 {
		stats.AvgOrderValue = yearRevenue / float64(stats.TotalInvoices)
	}

	c.JSON(http.StatusOK, gin.H{
		"currentMonthRevenue":   monthRevenue,
		"monthGrowth":           growth(monthRevenue, prevMonthRevenue),
		"currentQuarterRevenue": quarterRevenue,
		"quarterGrowth":         growth(quarterRevenue, prevQuarterRevenue),
		"currentYearRevenue":    yearRevenue,
		"yearGrowth":            growth(yearRevenue, prevYearRevenue),
		"topServices":           topServices,
		"topCustomers":          topCustomers,
		"quickStats":            stats,
	})
}
