package services

import (
	"testing"
	"time"

	"laundrypro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite-compatible mirrors of the postgres models: the uuid_generate_v4()
// column defaults in the real tags don't parse in sqlite DDL, so the test
// schema is created from these instead. IDs are always assigned in Go, so
// the missing defaults don't matter.

type outletSQLite struct {
	ID      uuid.UUID `gorm:"primaryKey"`
	Name    string    `gorm:"not null"`
	Prefix  string    `gorm:"uniqueIndex;not null"`
	Address string
	Phone   string
}

func (outletSQLite) TableName() string { return "outlets" }

type invoiceSequenceSQLite struct {
	OutletID   uuid.UUID `gorm:"primaryKey"`
	LastNumber int64     `gorm:"not null;default:0"`
}

func (invoiceSequenceSQLite) TableName() string { return "invoice_sequences" }

type customerSQLite struct {
	ID              uuid.UUID `gorm:"primaryKey"`
	OutletID        uuid.UUID `gorm:"index;not null;uniqueIndex:idx_outlet_phone,priority:1"`
	CreatedByUserID uuid.UUID `gorm:"index;not null"`
	Name            string    `gorm:"not null"`
	Phone           string    `gorm:"not null;uniqueIndex:idx_outlet_phone,priority:2"`
	Address         string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (customerSQLite) TableName() string { return "customers" }

type invoiceSQLite struct {
	ID              uuid.UUID `gorm:"primaryKey"`
	OutletID        uuid.UUID `gorm:"index;not null;uniqueIndex:idx_outlet_invoice_number,priority:1"`
	CustomerID      uuid.UUID `gorm:"index;not null"`
	CreatedByUserID uuid.UUID `gorm:"index;not null"`
	InvoiceNumber   string    `gorm:"not null;uniqueIndex:idx_outlet_invoice_number,priority:2"`
	Date            time.Time
	DeliveryDate    time.Time `gorm:"not null"`
	OrderType       string    `gorm:"default:'Normal'"`
	CustomerName    string    `gorm:"not null"`
	CustomerPhone   string    `gorm:"not null"`
	CustomerAddress string
	Notes           string
	DeliveryNotes   string
	TotalPieces     int     `gorm:"not null;default:0"`
	TotalAmount     float64 `gorm:"not null"`
	AmountPaid      float64 `gorm:"not null;default:0.0"`
	BalanceAmount   float64 `gorm:"not null;default:0.0"`
	InvoiceStatus   string  `gorm:"default:'Open'"`
	PaymentStatus   string  `gorm:"default:'Unpaid'"`
	IsDeleted       bool    `gorm:"default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (invoiceSQLite) TableName() string { return "invoices" }

type invoiceItemSQLite struct {
	ID              uuid.UUID `gorm:"primaryKey"`
	InvoiceID       uuid.UUID `gorm:"index;not null"`
	ProductCategory string    `gorm:"not null"`
	ProductType     string    `gorm:"not null"`
	Service         string    `gorm:"not null"`
	Quantity        int       `gorm:"not null"`
	Rate            float64   `gorm:"not null;default:0.0"`
	Total           float64   `gorm:"not null"`
	Status          string    `gorm:"default:'Received'"`
	CreatedAt       time.Time
}

func (invoiceItemSQLite) TableName() string { return "invoice_items" }

type paymentSQLite struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	InvoiceID   uuid.UUID `gorm:"index;not null"`
	Amount      float64   `gorm:"not null"`
	PaymentMode string    `gorm:"not null"`
	PaymentDate time.Time
	Notes       string
	CreatedAt   time.Time
}

func (paymentSQLite) TableName() string { return "payments" }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps the :memory: database alive and serializes
	// writers, which sqlite requires anyway.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&outletSQLite{},
		&invoiceSequenceSQLite{},
		&customerSQLite{},
		&invoiceSQLite{},
		&invoiceItemSQLite{},
		&paymentSQLite{},
	))

	return db
}

func createTestOutlet(t *testing.T, db *gorm.DB, prefix string) models.Outlet {
	t.Helper()
	outlet := models.Outlet{
		ID:     uuid.New(),
		Name:   prefix + " Branch",
		Prefix: prefix,
	}
	require.NoError(t, db.Create(&outlet).Error)
	require.NoError(t, db.Create(&models.InvoiceSequence{OutletID: outlet.ID}).Error)
	return outlet
}

func adminCaller() Caller {
	return Caller{UserID: uuid.New(), Role: "admin"}
}

func staffCaller(outletID uuid.UUID) Caller {
	return Caller{UserID: uuid.New(), Role: "staff", OutletID: &outletID}
}

func createTestCustomer(t *testing.T, db *gorm.DB, outletID uuid.UUID, phone string) models.Customer {
	t.Helper()
	customer := models.Customer{
		ID:              uuid.New(),
		OutletID:        outletID,
		CreatedByUserID: uuid.New(),
		Name:            "Test Customer",
		Phone:           phone,
		Address:         "12 Main Road",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

// createTestInvoice creates an admin invoice with two items at the given
// rates and one piece each.
func createTestInvoice(t *testing.T, db *gorm.DB, outlet models.Outlet, customer models.Customer, rates ...float64) *models.Invoice {
	t.Helper()
	params := CreateInvoiceParams{
		OutletID:     outlet.ID,
		CustomerID:   customer.ID,
		DeliveryDate: time.Now().AddDate(0, 0, 3),
		OrderType:    models.OrderTypeNormal,
	}
	for _, rate := range rates {
		params.Items = append(params.Items, CreateInvoiceItemParams{
			ProductCategory: models.CategorySaree,
			ProductType:     "Silk",
			Services:        []string{"Dry-Cleaning"},
			Quantity:        1,
			Rate:            rate,
		})
	}
	invoice, err := NewInvoiceService(db).Create(adminCaller(), params)
	require.NoError(t, err)
	return invoice
}
