package models

// Item fulfillment statuses, in workflow order.
const (
	ItemStatusReceived  = "Received"
	ItemStatusInProcess = "In Process"
	ItemStatusReady     = "Ready"
	ItemStatusDelivered = "Delivered"
)

// Invoice-level statuses derived from the items.
const (
	InvoiceStatusOpen      = "Open"
	InvoiceStatusPartial   = "Partial"
	InvoiceStatusDelivered = "Delivered"
)

const (
	PaymentStatusUnpaid    = "Unpaid"
	PaymentStatusPartially = "Partially Paid"
	PaymentStatusPaid      = "Paid"
)

const (
	OrderTypeNormal = "Normal"
	OrderTypeUrgent = "Urgent"
)

var ItemStatuses = []string{ItemStatusReceived, ItemStatusInProcess, ItemStatusReady, ItemStatusDelivered}

var PaymentModes = []string{"Cash", "UPI", "Bank"}

// DeriveInvoiceStatus computes the invoice status from the full set of item
// statuses. Always recomputed from the whole set, never incrementally, so
// the result does not depend on which item changed or in what order
// concurrent updates land.
func DeriveInvoiceStatus(items []InvoiceItem) string {
	if len(items) == 0 {
		return InvoiceStatusOpen
	}
	delivered := 0
	for _, item := range items {
		if item.Status == ItemStatusDelivered {
			delivered++
		}
	}
	switch {
	case delivered == len(items):
		return InvoiceStatusDelivered
	case delivered > 0:
		return InvoiceStatusPartial
	default:
		return InvoiceStatusOpen
	}
}

// DerivePaymentStatus computes the payment status from the invoice total and
// the sum of its payments.
func DerivePaymentStatus(totalAmount, amountPaid float64) string {
	switch {
	case amountPaid <= 0:
		return PaymentStatusUnpaid
	case amountPaid >= totalAmount:
		return PaymentStatusPaid
	default:
		return PaymentStatusPartially
	}
}

func ValidItemStatus(status string) bool {
	for _, s := range ItemStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ValidOrderType(orderType string) bool {
	return orderType == OrderTypeNormal || orderType == OrderTypeUrgent
}

func ValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}
