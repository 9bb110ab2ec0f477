package Controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReceipt(t *testing.T) {
	r, db := newServer(t)
	_, americano, roti := seedCafe(t, db)
	orderID := submitOrder(t, r, "device-abc", americano, roti)

	w := doJSON(t, r, "POST", "/payments", map[string]interface{}{
		"order_id": orderID, "payment_method": "qris", "amount": 38000,
	}, cartHeaders("device-abc"))
	require.Equal(t, http.StatusCreated, w.Code)
	trxID := dataObject(t, w)["transaksi"].(map[string]interface{})["id"].(float64)

	w = doJSON(t, r, "GET", fmt.Sprintf("/receipts/%.0f", trxID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	receipt := dataObject(t, w)
	assert.True(t, strings.HasPrefix(receipt["receipt_number"].(string), "RCP/"))
	assert.Equal(t, orderID, receipt["order_id"])
	assert.Equal(t, "5", receipt["table_number"])
	assert.Equal(t, float64(38000), receipt["total"])
	assert.Equal(t, "Rp 38.000", receipt["formatted_total"])
	assert.Equal(t, "qris", receipt["payment_method"])

	items := receipt["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Americano", first["menu_name"])
	assert.Equal(t, float64(2), first["quantity"])
	assert.Equal(t, float64(30000), first["subtotal"])

	settlement := receipt["settlement"].(map[string]interface{})
	assert.NotEmpty(t, settlement["qr_image"])

	// Struk read-only: boleh dibaca berkali-kali
	w = doJSON(t, r, "GET", fmt.Sprintf("/receipts/%.0f", trxID), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetReceiptCashHasNoSettlement(t *testing.T) {
	r, db := newServer(t)
	_, americano, roti := seedCafe(t, db)
	orderID := submitOrder(t, r, "device-abc", americano, roti)

	w := doJSON(t, r, "POST", "/payments", map[string]interface{}{
		"order_id": orderID, "payment_method": "cash", "amount": 40000,
	}, cartHeaders("device-abc"))
	require.Equal(t, http.StatusCreated, w.Code)
	trxID := dataObject(t, w)["transaksi"].(map[string]interface{})["id"].(float64)

	w = doJSON(t, r, "GET", fmt.Sprintf("/receipts/%.0f", trxID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	receipt := dataObject(t, w)
	assert.Equal(t, float64(40000), receipt["amount_paid"])
	assert.Equal(t, float64(2000), receipt["change"])
	assert.NotContains(t, receipt, "settlement")
}

func TestGetReceiptNotFound(t *testing.T) {
	r, db := newServer(t)
	seedCafe(t, db)

	w := doJSON(t, r, "GET", "/receipts/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/receipts/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
