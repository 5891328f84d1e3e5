package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemsWithStatuses(statuses ...string) []InvoiceItem {
	items := make([]InvoiceItem, len(statuses))
	for i, s := range statuses {
		items[i] = InvoiceItem{Status: s}
	}
	return items
}

func TestDeriveInvoiceStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"no items", nil, InvoiceStatusOpen},
		{"all received", []string{ItemStatusReceived, ItemStatusReceived}, InvoiceStatusOpen},
		{"in progress only", []string{ItemStatusInProcess, ItemStatusReady}, InvoiceStatusOpen},
		{"one delivered", []string{ItemStatusDelivered, ItemStatusReceived}, InvoiceStatusPartial},
		{"most delivered", []string{ItemStatusDelivered, ItemStatusDelivered, ItemStatusReady}, InvoiceStatusPartial},
		{"all delivered", []string{ItemStatusDelivered, ItemStatusDelivered}, InvoiceStatusDelivered},
		{"single delivered", []string{ItemStatusDelivered}, InvoiceStatusDelivered},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveInvoiceStatus(itemsWithStatuses(tc.statuses...)))
		})
	}
}

func TestDeriveInvoiceStatusOrderIndependent(t *testing.T) {
	statuses := []string{
		ItemStatusDelivered, ItemStatusReceived, ItemStatusReady,
		ItemStatusDelivered, ItemStatusInProcess,
	}

	want := DeriveInvoiceStatus(itemsWithStatuses(statuses...))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), statuses...)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, DeriveInvoiceStatus(itemsWithStatuses(shuffled...)))
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  string
	}{
		{"nothing paid", 1000, 0, PaymentStatusUnpaid},
		{"partially paid", 1000, 400, PaymentStatusPartially},
		{"almost paid", 1000, 999.99, PaymentStatusPartially},
		{"exactly paid", 1000, 1000, PaymentStatusPaid},
		{"zero total", 0, 0, PaymentStatusUnpaid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DerivePaymentStatus(tc.total, tc.paid))
		})
	}
}

func TestCatalogValidation(t *testing.T) {
	assert.True(t, ValidProductType(CategorySaree, "Silk"))
	assert.True(t, ValidProductType(CategoryGarment, "Blazer"))
	assert.False(t, ValidProductType(CategorySaree, "Blazer"))
	assert.False(t, ValidProductType("Curtain", "Silk"))

	assert.True(t, ValidService("Dry-Cleaning"))
	assert.False(t, ValidService("Ironing"))

	assert.True(t, ValidItemStatus(ItemStatusReady))
	assert.False(t, ValidItemStatus("Lost"))

	assert.True(t, ValidPaymentMode("UPI"))
	assert.False(t, ValidPaymentMode("Cheque"))

	assert.True(t, ValidOrderType(OrderTypeUrgent))
	assert.False(t, ValidOrderType("Express"))
}
