package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/models"
)

func TestSubmitComputesTotalFromCurrentMenuPrice(t *testing.T) {
	db := newTestDB(t)
	kopi, roti := seedMenus(t, db)
	svc := NewOrderService(db)

	// Keranjang menyimpan harga lama; harga menu naik sebelum submit
	snapshot := cartWith(
		cart.Line{MenuID: kopi.ID, Name: kopi.Name, UnitPrice: 15000, Quantity: 2},
		cart.Line{MenuID: roti.ID, Name: roti.Name, UnitPrice: 8000, Quantity: 1},
	)
	require.NoError(t, db.Model(&models.Menu{}).Where("id = ?", kopi.ID).Update("price", 17000).Error)

	order, err := svc.Submit(snapshot, "5", nil, "")
	require.NoError(t, err)

	assert.Equal(t, float64(2*17000+8000), order.TotalPrice)
	assert.Equal(t, OrderStatusPending, order.Status)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, float64(17000), order.OrderItems[0].Price)
	assert.Equal(t, float64(34000), order.OrderItems[0].Subtotal)
	assert.Equal(t, ItemStatusPending, order.OrderItems[0].Status)
}

func TestSubmitEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Submit(cart.New(), "5", nil, "")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.Submit(nil, "5", nil, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmitSoldOutItemPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	kopi, roti := seedMenus(t, db)
	svc := NewOrderService(db)

	require.NoError(t, db.Model(&models.Menu{}).Where("id = ?", roti.ID).
		Update("status", models.MenuStatusSoldOut).Error)

	snapshot := cartWith(
		cart.Line{MenuID: kopi.ID, Name: kopi.Name, UnitPrice: kopi.Price, Quantity: 1},
		cart.Line{MenuID: roti.ID, Name: roti.Name, UnitPrice: roti.Price, Quantity: 1},
	)
	_, err := svc.Submit(snapshot, "5", nil, "")

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, roti.ID, unavailable.MenuID)

	// Rollback total: tidak ada order maupun item yang tersisa
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestSubmitUnknownMenuPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	seedMenus(t, db)
	svc := NewOrderService(db)

	snapshot := cartWith(cart.Line{MenuID: 999, Name: "Hantu", UnitPrice: 1000, Quantity: 1})
	_, err := svc.Submit(snapshot, "5", nil, "")

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, uint(999), unavailable.MenuID)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
}

func TestSubmitCarriesLineNotes(t *testing.T) {
	db := newTestDB(t)
	kopi, _ := seedMenus(t, db)
	svc := NewOrderService(db)

	snapshot := cartWith(cart.Line{MenuID: kopi.ID, Name: kopi.Name, UnitPrice: kopi.Price, Quantity: 1, Note: "less sugar"})
	order, err := svc.Submit(snapshot, "Budi (take away)", nil, "jangan pedas")
	require.NoError(t, err)

	assert.Equal(t, "Budi (take away)", order.TableNumber)
	assert.Equal(t, "jangan pedas", order.Note)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, "less sugar", order.OrderItems[0].Notes)
}

func TestGetOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.GetOrder(404)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	kopi, _ := seedMenus(t, db)
	svc := NewOrderService(db)

	line := cart.Line{MenuID: kopi.ID, Name: kopi.Name, UnitPrice: kopi.Price, Quantity: 1}
	first, err := svc.Submit(cartWith(line), "1", nil, "")
	require.NoError(t, err)
	_, err = svc.Submit(cartWith(line), "2", nil, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, OrderStatusProcessing)
	require.NoError(t, err)

	pending, err := svc.ListOrders(OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.ListOrders("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	db := newTestDB(t)
	kopi, _ := seedMenus(t, db)
	svc := NewOrderService(db)

	order, err := svc.Submit(cartWith(cart.Line{MenuID: kopi.ID, Quantity: 1}), "5", nil, "")
	require.NoError(t, err)

	// pending tidak boleh langsung completed
	_, err = svc.UpdateStatus(order.ID, OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := svc.UpdateStatus(order.ID, OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusProcessing, updated.Status)

	updated, err = svc.UpdateStatus(order.ID, OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, updated.Status)

	// completed itu terminal
	_, err = svc.UpdateStatus(order.ID, OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusCancelOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	kopi, _ := seedMenus(t, db)
	svc := NewOrderService(db)

	order, err := svc.Submit(cartWith(cart.Line{MenuID: kopi.ID, Quantity: 1}), "5", nil, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, OrderStatusProcessing)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateItemStatusKitchenFlow(t *testing.T) {
	db := newTestDB(t)
	kopi, _ := seedMenus(t, db)
	svc := NewOrderService(db)

	order, err := svc.Submit(cartWith(cart.Line{MenuID: kopi.ID, Quantity: 1}), "5", nil, "")
	require.NoError(t, err)
	itemID := order.OrderItems[0].ID

	_, err = svc.UpdateItemStatus(itemID, ItemStatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	item, err := svc.UpdateItemStatus(itemID, ItemStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, ItemStatusPreparing, item.Status)

	item, err = svc.UpdateItemStatus(itemID, ItemStatusReady)
	require.NoError(t, err)
	assert.Equal(t, ItemStatusReady, item.Status)

	_, err = svc.UpdateItemStatus(itemID, ItemStatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
