package services

import (
	"testing"

	"laundrypro-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	svc := NewCustomerService(db)

	customer, err := svc.Create(staffCaller(outlet.ID), outlet.ID, CustomerParams{
		Name:  "Asha Mehta",
		Phone: "+919876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, outlet.ID, customer.OutletID)

	// Same phone in the same outlet conflicts
	_, err = svc.Create(adminCaller(), outlet.ID, CustomerParams{
		Name:  "Someone Else",
		Phone: "+919876543210",
	})
	assert.ErrorIs(t, err, utils.ErrConflict)

	// Same phone in another outlet is fine
	other := createTestOutlet(t, db, "MG")
	_, err = svc.Create(adminCaller(), other.ID, CustomerParams{
		Name:  "Asha Mehta",
		Phone: "+919876543210",
	})
	assert.NoError(t, err)
}

func TestCreateCustomerValidation(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	svc := NewCustomerService(db)

	_, err := svc.Create(adminCaller(), outlet.ID, CustomerParams{Name: "", Phone: "+919876543210"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.Create(adminCaller(), outlet.ID, CustomerParams{Name: "Asha", Phone: "not-a-phone"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeleteCustomerReferencedByInvoice(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	customer := createTestCustomer(t, db, outlet.ID, "+919876543210")
	svc := NewCustomerService(db)
	admin := adminCaller()

	createTestInvoice(t, db, outlet, customer, 100)

	err := svc.Delete(admin, customer.ID)
	assert.ErrorIs(t, err, utils.ErrConflict)

	// Still there
	_, err = svc.Get(admin, customer.ID)
	assert.NoError(t, err)
}

func TestDeleteCustomerWithoutInvoices(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	customer := createTestCustomer(t, db, outlet.ID, "+919876543210")
	svc := NewCustomerService(db)
	admin := adminCaller()

	// Staff may not delete at all
	assert.ErrorIs(t, svc.Delete(staffCaller(outlet.ID), customer.ID), utils.ErrPermission)

	require.NoError(t, svc.Delete(admin, customer.ID))

	_, err := svc.Get(admin, customer.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestPhoneReusableAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	customer := createTestCustomer(t, db, outlet.ID, "+919876543210")
	svc := NewCustomerService(db)
	admin := adminCaller()

	require.NoError(t, svc.Delete(admin, customer.ID))

	// The deleted customer no longer holds the phone number.
	replacement, err := svc.Create(admin, outlet.ID, CustomerParams{
		Name:  "Returning Customer",
		Phone: "+919876543210",
	})
	require.NoError(t, err)
	assert.NotEqual(t, customer.ID, replacement.ID)
}

func TestCustomerSummary(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	customer := createTestCustomer(t, db, outlet.ID, "+919876543210")
	customers := NewCustomerService(db)
	payments := NewPaymentService(db)
	admin := adminCaller()

	first := createTestInvoice(t, db, outlet, customer, 400, 600)
	createTestInvoice(t, db, outlet, customer, 500)

	_, err := payments.Add(admin, first.ID, AddPaymentParams{Amount: 300, PaymentMode: "Cash"})
	require.NoError(t, err)

	summary, err := customers.Summary(admin, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, summary.TotalBilled)
	assert.Equal(t, 300.0, summary.TotalPaid)
	assert.Equal(t, 1200.0, summary.TotalDue)
	assert.Len(t, summary.Invoices, 2)
}

func TestListCustomersScoping(t *testing.T) {
	db := setupTestDB(t)
	first := createTestOutlet(t, db, "BD")
	second := createTestOutlet(t, db, "MG")
	createTestCustomer(t, db, first.ID, "+919876543210")
	createTestCustomer(t, db, second.ID, "+919876543211")
	svc := NewCustomerService(db)

	all, err := svc.List(adminCaller(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	narrowed, err := svc.List(adminCaller(), &second.ID)
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, second.ID, narrowed[0].OutletID)

	mine, err := svc.List(staffCaller(first.ID), nil)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].OutletID)

	// Staff cannot read another outlet's customer
	_, err = svc.Get(staffCaller(first.ID), narrowed[0].ID)
	assert.ErrorIs(t, err, utils.ErrPermission)
}

func TestUpdateCustomer(t *testing.T) {
	db := setupTestDB(t)
	outlet := createTestOutlet(t, db, "BD")
	customer := createTestCustomer(t, db, outlet.ID, "+919876543210")
	svc := NewCustomerService(db)
	admin := adminCaller()

	name := "Renamed Customer"
	updated, err := svc.Update(admin, customer.ID, UpdateCustomerParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	// Phone collisions within the outlet are rejected
	other := createTestCustomer(t, db, outlet.ID, "+919876543299")
	phone := customer.Phone
	_, err = svc.Update(admin, other.ID, UpdateCustomerParams{Phone: &phone})
	assert.ErrorIs(t, err, utils.ErrConflict)
}
