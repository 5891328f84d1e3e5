// services/notify_service.go
package services

import (
	"fmt"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotifyService nudges customers whose orders are due for pickup. Send
// failures are logged and never fail the scan.
type NotifyService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotifyService(db *gorm.DB) *NotifyService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotifyService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.SendDeliveryReminders); err != nil {
		log.Printf("Failed to schedule delivery reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Delivery reminder scheduler started")
}

// SendDeliveryReminders messages the customer of every live invoice whose
// delivery date has arrived but is not yet fully delivered.
func (s *NotifyService) SendDeliveryReminders() {
	log.Println("Starting delivery reminder processing...")

	endOfToday := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)

	var invoices []models.Invoice
	if err := s.db.
		Where("is_deleted = ? AND invoice_status <> ? AND delivery_date < ?",
			false, models.InvoiceStatusDelivered, endOfToday).
		Find(&invoices).Error; err != nil {
		log.Printf("Failed to fetch due invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		s.sendReminder(invoice)
	}

	log.Printf("Delivery reminder processing completed (%d invoices)", len(invoices))
}

func (s *NotifyService) sendReminder(invoice models.Invoice) {
	message := fmt.Sprintf(
		"Hi %s, your order %s (%d pieces) is ready for pickup. Balance due: %.2f. Thank you!",
		invoice.CustomerName, invoice.InvoiceNumber, invoice.TotalPieces, invoice.BalanceAmount)
	if overdue := utils.DaysBetween(invoice.DeliveryDate, time.Now()); overdue > 0 {
		message = fmt.Sprintf(
			"Hi %s, your order %s (%d pieces) has been awaiting pickup for %d days. Balance due: %.2f. Thank you!",
			invoice.CustomerName, invoice.InvoiceNumber, invoice.TotalPieces, overdue, invoice.BalanceAmount)
	}

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(invoice.CustomerPhone, "+") {
		to = "whatsapp:" + invoice.CustomerPhone
		channel = "whatsapp"
	} else {
		to = invoice.CustomerPhone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder for invoice %s: %v", invoice.InvoiceNumber, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for invoice %s, SID: %s", invoice.InvoiceNumber, *resp.Sid)
	}

	notificationLog := models.NotificationLog{
		OutletID:     invoice.OutletID,
		InvoiceID:    invoice.ID,
		Phone:        invoice.CustomerPhone,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		log.Printf("Failed to log reminder for invoice %s: %v", invoice.InvoiceNumber, err)
	}
}
