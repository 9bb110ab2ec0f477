package kds

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pandugalih/kedai-pos/models"
)

// Event types
const (
	EventOrderUpdate      = "order_update"
	EventOrderItemUpdate  = "order_item_update"
	EventPaymentSettled   = "payment_settled"
	EventReceiptRequested = "receipt_requested"
	EventStaffNotif       = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua client staff (waiter, kasir, owner, admin) dan
// menyiarkan perubahan order/pembayaran ke mereka.
type KDSHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate -> menyiarkan order baru / perubahan status order
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastOrderItemUpdate -> progress dapur per item
func BroadcastOrderItemUpdate(item models.OrderItem) {
	broadcast(Message{
		Event: EventOrderItemUpdate,
		Data:  item,
	})
}

// BroadcastPaymentSettled -> notifikasi order sudah dibayar
func BroadcastPaymentSettled(trx models.Transaksi) {
	broadcast(Message{
		Event: EventPaymentSettled,
		Data:  trx,
	})
}

// BroadcastReceiptRequested -> kasir tahu struk transaksi ini sedang diminta
func BroadcastReceiptRequested(transaksiID uint) {
	broadcast(Message{
		Event: EventReceiptRequested,
		Data:  map[string]uint{"transaksi_id": transaksiID},
	})
}

// BroadcastStaffNotification -> notifikasi teks bebas untuk staff
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
