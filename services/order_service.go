package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/models"
)

// Status order
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Status item order (progress dapur)
const (
	ItemStatusPending   = "pending"
	ItemStatusPreparing = "preparing"
	ItemStatusReady     = "ready"
)

// Transisi status yang diizinkan; completed dan cancelled terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted},
}

var itemTransitions = map[string][]string{
	ItemStatusPending:   {ItemStatusPreparing},
	ItemStatusPreparing: {ItemStatusReady},
}

// OrderService mengubah snapshot keranjang menjadi order tersimpan beserta
// item-itemnya, dan mengurus perpindahan status oleh staff.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Submit membuat Order + OrderItem dalam satu transaksi database: semua
// masuk atau tidak sama sekali. Harga satuan diambil dari harga menu saat
// submit, bukan dari harga yang tersimpan di keranjang. Keranjang TIDAK
// dikosongkan di sini; itu tanggung jawab caller setelah pembayaran sukses.
func (s *OrderService) Submit(snapshot *cart.Cart, tableNumber string, userID *uint, note string) (*models.Order, error) {
	if snapshot == nil || snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var created models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		var total float64
		items := make([]models.OrderItem, 0, len(snapshot.Lines))

		for _, line := range snapshot.Lines {
			var menu models.Menu
			if err := tx.First(&menu, line.MenuID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ItemUnavailableError{MenuID: line.MenuID, Name: line.Name}
				}
				return fmt.Errorf("failed to load menu %d: %w", line.MenuID, err)
			}
			if !menu.IsAvailable() {
				return &ItemUnavailableError{MenuID: menu.ID, Name: menu.Name}
			}

			subtotal := float64(line.Quantity) * menu.Price
			total += subtotal
			items = append(items, models.OrderItem{
				MenuID:    menu.ID,
				Quantity:  line.Quantity,
				Price:     menu.Price,
				Subtotal:  subtotal,
				Notes:     line.Note,
				Status:    ItemStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		order := models.Order{
			TableNumber: tableNumber,
			UserID:      userID,
			Note:        note,
			Status:      OrderStatusPending,
			TotalPrice:  total,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		order.OrderItems = items
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetOrder mengambil satu order lengkap dengan item dan menu-nya.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("OrderItems").Preload("OrderItems.Menu").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

// ListOrders untuk staff; status kosong berarti semua.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	var orders []models.Order
	query := s.db.Preload("OrderItems").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus memindahkan status order mengikuti tabel transisi. Order yang
// sudah completed/cancelled tidak bisa diubah lagi.
func (s *OrderService) UpdateStatus(orderID uint, next string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if !transitionAllowed(orderTransitions, order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &order, nil
}

// UpdateItemStatus memindahkan progress dapur satu item.
func (s *OrderService) UpdateItemStatus(itemID uint, next string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order item: %w", err)
	}

	if !transitionAllowed(itemTransitions, item.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, item.Status, next)
	}

	item.Status = next
	item.UpdatedAt = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}
	return &item, nil
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	for _, allowed := range table[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
