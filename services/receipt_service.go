package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/models"
	"github.com/pandugalih/kedai-pos/utils"
)

// ReceiptLine adalah satu baris struk, sudah digabung dengan nama menu.
type ReceiptLine struct {
	MenuID    uint    `json:"menu_id"`
	MenuName  string  `json:"menu_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
	Notes     string  `json:"notes,omitempty"`
}

// Receipt adalah proyeksi read-only dari satu transaksi beserta order dan
// item-itemnya, siap ditampilkan atau dicetak.
type Receipt struct {
	ReceiptNumber  string             `json:"receipt_number"`
	TransaksiID    uint               `json:"transaksi_id"`
	OrderID        uint               `json:"order_id"`
	TableNumber    string             `json:"table_number"`
	OrderStatus    string             `json:"order_status"`
	Items          []ReceiptLine      `json:"items"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formatted_total"`
	PaymentMethod  string             `json:"payment_method"`
	AmountPaid     float64            `json:"amount_paid"`
	Change         float64            `json:"change"`
	PaidAt         time.Time          `json:"paid_at"`
	Settlement     *SettlementPayload `json:"settlement,omitempty"`
}

// ReceiptService membaca ulang transaksi untuk ditampilkan. Tidak ada mutasi
// sama sekali; aman dipanggil berulang.
type ReceiptService struct {
	db       *gorm.DB
	payments *PaymentService
}

func NewReceiptService(db *gorm.DB, payments *PaymentService) *ReceiptService {
	return &ReceiptService{db: db, payments: payments}
}

// ByTransaksiID mengambil transaksi + order + item + nama menu dalam satu
// proyeksi struk.
func (s *ReceiptService) ByTransaksiID(id uint) (*Receipt, error) {
	var trx models.Transaksi
	err := s.db.
		Preload("Order").
		Preload("Order.OrderItems").
		Preload("Order.OrderItems.Menu").
		First(&trx, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaksiNotFound
		}
		return nil, fmt.Errorf("failed to load transaksi: %w", err)
	}

	settlement, err := s.payments.SettlementFor(&trx)
	if err != nil {
		return nil, err
	}

	items := make([]ReceiptLine, 0, len(trx.Order.OrderItems))
	for _, item := range trx.Order.OrderItems {
		items = append(items, ReceiptLine{
			MenuID:    item.MenuID,
			MenuName:  item.Menu.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Subtotal,
			Notes:     item.Notes,
		})
	}

	return &Receipt{
		ReceiptNumber:  fmt.Sprintf("RCP/%s/%06d", trx.CreatedAt.Format("20060102"), trx.ID),
		TransaksiID:    trx.ID,
		OrderID:        trx.OrderID,
		TableNumber:    trx.Order.TableNumber,
		OrderStatus:    trx.Order.Status,
		Items:          items,
		Total:          trx.Order.TotalPrice,
		FormattedTotal: utils.FormatCurrencyIDR(trx.Order.TotalPrice),
		PaymentMethod:  trx.PaymentMethod,
		AmountPaid:     trx.Amount,
		Change:         trx.Change,
		PaidAt:         trx.CreatedAt,
		Settlement:     settlement,
	}, nil
}
