package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/clock"
	"github.com/pandugalih/kedai-pos/models"
)

// SettlementTTL adalah umur artefak settlement sejak dibuat.
const SettlementTTL = 15 * time.Minute

const defaultMerchantName = "Kedai Kopi Pandu"

// SettlementPayload adalah artefak pembayaran simulasi yang ditampilkan ke
// customer. Tidak pernah disimpan; dibuat ulang dari transaksi setiap kali
// dibaca, sehingga ExpiresAt ikut bergeser per pembacaan.
type SettlementPayload struct {
	QRImage        string    `json:"qr_image,omitempty"`
	VirtualAccount string    `json:"virtual_account,omitempty"`
	AccountName    string    `json:"account_name,omitempty"`
	Amount         float64   `json:"amount"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// PaymentService menangani pelunasan order: satu kali Pay yang sukses
// menghasilkan tepat satu baris transaksi. Keunikan per order dijaga oleh
// constraint unik di tabel transaksi, bukan oleh check-then-insert.
type PaymentService struct {
	db           *gorm.DB
	clock        clock.Clock
	merchantName string
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	name := os.Getenv("MERCHANT_NAME")
	if name == "" {
		name = defaultMerchantName
	}
	return &PaymentService{db: db, clock: clock.NewSystem(), merchantName: name}
}

// NewPaymentServiceWithClock dipakai test untuk mengontrol waktu.
func NewPaymentServiceWithClock(db *gorm.DB, clk clock.Clock, merchantName string) *PaymentService {
	return &PaymentService{db: db, clock: clk, merchantName: merchantName}
}

// Pay melunasi satu order:
//  1. nominal harus sama dengan total order (metode cash boleh lebih,
//     selisihnya jadi kembalian),
//  2. metode harus terdaftar,
//  3. tepat satu baris transaksi di-insert; pelanggaran constraint unik
//     berarti order sudah dibayar (ErrDuplicatePayment), kegagalan lain
//     tidak meninggalkan baris apa pun dan boleh di-retry oleh caller,
//  4. payload settlement diturunkan dari kategori metode.
func (s *PaymentService) Pay(orderID uint, methodCode string, amount float64, userID *uint) (*models.Transaksi, *SettlementPayload, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, fmt.Errorf("failed to load order: %w", err)
	}

	method, ok := LookupMethod(methodCode)
	if !ok {
		return nil, nil, ErrUnknownMethod
	}

	var change float64
	if method.Category == CategoryCash {
		if amount < order.TotalPrice {
			return nil, nil, ErrAmountMismatch
		}
		change = amount - order.TotalPrice
	} else if amount != order.TotalPrice {
		return nil, nil, ErrAmountMismatch
	}

	trx := models.Transaksi{
		OrderID:       order.ID,
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: method.Code,
		Change:        change,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.db.Create(&trx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrDuplicatePayment
		}
		return nil, nil, fmt.Errorf("failed to insert transaksi: %w", err)
	}

	payload, err := s.settlementPayload(method, order.ID, order.TotalPrice)
	if err != nil {
		// Transaksi sudah tersimpan; payload bisa dibuat ulang lewat
		// SettlementFor, jadi kembalikan transaksinya bersama errornya.
		return &trx, nil, err
	}
	return &trx, payload, nil
}

// GetTransaksi mengambil satu transaksi berdasarkan id.
func (s *PaymentService) GetTransaksi(id uint) (*models.Transaksi, error) {
	var trx models.Transaksi
	if err := s.db.First(&trx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaksiNotFound
		}
		return nil, fmt.Errorf("failed to load transaksi: %w", err)
	}
	return &trx, nil
}

// ListTransaksi untuk kasir/owner melihat riwayat pembayaran.
func (s *PaymentService) ListTransaksi() ([]models.Transaksi, error) {
	var out []models.Transaksi
	if err := s.db.Preload("Order").Order("created_at desc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list transaksi: %w", err)
	}
	return out, nil
}

// SettlementFor membuat ulang payload settlement dari sebuah transaksi.
// Metode cash tidak punya artefak, hasilnya nil.
func (s *PaymentService) SettlementFor(trx *models.Transaksi) (*SettlementPayload, error) {
	method, ok := LookupMethod(trx.PaymentMethod)
	if !ok {
		return nil, ErrUnknownMethod
	}
	return s.settlementPayload(method, trx.OrderID, trx.Amount-trx.Change)
}

func (s *PaymentService) settlementPayload(method PaymentMethod, orderID uint, amount float64) (*SettlementPayload, error) {
	if method.Category == CategoryCash {
		return nil, nil
	}

	payload := &SettlementPayload{
		Amount:    amount,
		ExpiresAt: s.clock.Now().Add(SettlementTTL),
	}
	if method.Category == CategoryQRBased {
		img, err := QRImageRef(QRPayload(orderID, amount))
		if err != nil {
			return nil, err
		}
		payload.QRImage = img
	}
	if method.WithVirtualAccount {
		payload.VirtualAccount = VirtualAccountNumber(method.Code, orderID)
		payload.AccountName = s.merchantName
	}
	return payload, nil
}
