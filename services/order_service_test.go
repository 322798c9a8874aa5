package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite-app/models"
	"github.com/quickbite/quickbite-app/statemachine"
	"github.com/quickbite/quickbite-app/storage"
	"github.com/quickbite/quickbite-app/store"
	"github.com/quickbite/quickbite-app/utils"
)

func newTestService(t *testing.T) (*OrderService, *store.OrderStore) {
	t.Helper()
	utils.InitLogger()
	backend, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	st, err := store.NewOrderStore(backend, statemachine.Lenient)
	require.NoError(t, err)
	return NewOrderService(st), st
}

func testInfo() CustomerInfo {
	return CustomerInfo{
		Name:    "Marie Dupont",
		Address: "8 rue des Lilas, Paris",
		Phone:   "0612345678",
	}
}

func testLines() []models.CartLine {
	return []models.CartLine{
		{ID: "1-1", Name: "Margherita", Price: 10, Quantity: 2, RestaurantID: "1", RestaurantName: "La Bella Italia"},
		{ID: "1-6", Name: "Tiramisu", Price: 5, Quantity: 1, RestaurantID: "1", RestaurantName: "La Bella Italia"},
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.CreateOrder(nil, testInfo())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, st.Len(), "a rejected checkout must leave the store unchanged")
}

func TestCreateOrderRejectsIncompleteCustomerInfo(t *testing.T) {
	svc, st := newTestService(t)

	for _, info := range []CustomerInfo{
		{Name: "", Address: "8 rue des Lilas", Phone: "0612345678"},
		{Name: "Marie", Address: "   ", Phone: "0612345678"},
		{Name: "Marie", Address: "8 rue des Lilas", Phone: ""},
	} {
		_, err := svc.CreateOrder(testLines(), info)
		assert.ErrorIs(t, err, ErrMissingCustomerInfo)
	}
	assert.Equal(t, 0, st.Len())
}

func TestCreateOrderTotal(t *testing.T) {
	svc, _ := newTestService(t)

	// lines {10 x 2} and {5 x 1}: subtotal 25, fee 2.99, total 27.99
	order, err := svc.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)

	assert.InDelta(t, 2.99, order.DeliveryFee, 1e-9)
	assert.InDelta(t, 27.99, order.Total, 1e-9)
	assert.InDelta(t, 25.0, order.Subtotal(), 1e-9)
}

func TestCreateOrderFields(t *testing.T) {
	svc, st := newTestService(t)

	before := time.Now()
	order, err := svc.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "1", order.RestaurantID)
	assert.Equal(t, "La Bella Italia", order.RestaurantName)
	assert.Equal(t, "Marie Dupont", order.CustomerName)
	assert.True(t, order.CreatedAt.Equal(order.UpdatedAt))
	assert.False(t, order.CreatedAt.Before(before))
	assert.True(t, order.EstimatedDelivery.Equal(order.CreatedAt.Add(45*time.Minute)))

	assert.Regexp(t, `^ORD-[0-9A-F]{12}$`, order.ID)
	assert.Regexp(t, fmt.Sprintf(`^INV-%d-\d{5}$`, time.Now().Year()), order.InvoiceNumber)

	// the created order is in the store
	stored, ok := st.ByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.InvoiceNumber, stored.InvoiceNumber)
}

func TestCreateOrderSnapshotsItems(t *testing.T) {
	svc, st := newTestService(t)

	lines := testLines()
	order, err := svc.CreateOrder(lines, testInfo())
	require.NoError(t, err)

	// mutating the caller's slice must not leak into the stored snapshot
	lines[0].Quantity = 99
	lines[0].Price = 0

	stored, ok := st.ByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.InDelta(t, 10.0, stored.Items[0].Price, 1e-9)
}

func TestIdentityUniqueness(t *testing.T) {
	svc, _ := newTestService(t)

	const n = 25
	ids := make(map[string]bool, n)
	invoices := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		order, err := svc.CreateOrder(testLines(), testInfo())
		require.NoError(t, err)
		ids[order.ID] = true
		invoices[order.InvoiceNumber] = true
	}
	assert.Len(t, ids, n, "order ids must be distinct")
	assert.Len(t, invoices, n, "invoice numbers must be distinct")
}

func TestOrdersAreNewestFirst(t *testing.T) {
	svc, st := newTestService(t)

	first, err := svc.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)
	second, err := svc.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)

	all := st.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestInvoiceSequenceResumesAfterReload(t *testing.T) {
	utils.InitLogger()
	backend, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	st1, err := store.NewOrderStore(backend, statemachine.Lenient)
	require.NoError(t, err)
	svc1 := NewOrderService(st1)
	o1, err := svc1.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)

	st2, err := store.NewOrderStore(backend, statemachine.Lenient)
	require.NoError(t, err)
	svc2 := NewOrderService(st2)
	o2, err := svc2.CreateOrder(testLines(), testInfo())
	require.NoError(t, err)

	assert.NotEqual(t, o1.InvoiceNumber, o2.InvoiceNumber)
}
