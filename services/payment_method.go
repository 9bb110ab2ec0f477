package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Kategori metode pembayaran. Setiap kategori menentukan artefak settlement
// yang dihasilkan: QR (plus VA untuk e-wallet), VA saja, atau tidak ada
// sama sekali untuk cash.
type MethodCategory string

const (
	CategoryQRBased      MethodCategory = "qr_based"
	CategoryBankTransfer MethodCategory = "bank_transfer"
	CategoryCash         MethodCategory = "cash"
)

type PaymentMethod struct {
	Code               string         `json:"code"`
	Label              string         `json:"label"`
	Category           MethodCategory `json:"category"`
	WithVirtualAccount bool           `json:"with_virtual_account"`
}

var paymentMethods = map[string]PaymentMethod{
	"qris":      {Code: "qris", Label: "QRIS", Category: CategoryQRBased},
	"gopay":     {Code: "gopay", Label: "GoPay", Category: CategoryQRBased, WithVirtualAccount: true},
	"ovo":       {Code: "ovo", Label: "OVO", Category: CategoryQRBased, WithVirtualAccount: true},
	"dana":      {Code: "dana", Label: "DANA", Category: CategoryQRBased, WithVirtualAccount: true},
	"shopeepay": {Code: "shopeepay", Label: "ShopeePay", Category: CategoryQRBased, WithVirtualAccount: true},
	"bca":       {Code: "bca", Label: "BCA Virtual Account", Category: CategoryBankTransfer, WithVirtualAccount: true},
	"bni":       {Code: "bni", Label: "BNI Virtual Account", Category: CategoryBankTransfer, WithVirtualAccount: true},
	"bri":       {Code: "bri", Label: "BRI Virtual Account", Category: CategoryBankTransfer, WithVirtualAccount: true},
	"mandiri":   {Code: "mandiri", Label: "Mandiri Virtual Account", Category: CategoryBankTransfer, WithVirtualAccount: true},
	"permata":   {Code: "permata", Label: "Permata Virtual Account", Category: CategoryBankTransfer, WithVirtualAccount: true},
	"cash":      {Code: "cash", Label: "Tunai", Category: CategoryCash},
}

// LookupMethod mencari deskriptor metode pembayaran; case-insensitive.
func LookupMethod(code string) (PaymentMethod, bool) {
	m, ok := paymentMethods[strings.ToLower(code)]
	return m, ok
}

// ListMethods mengembalikan semua metode yang didukung untuk UI pemilihan.
func ListMethods() []PaymentMethod {
	out := make([]PaymentMethod, 0, len(paymentMethods))
	for _, m := range paymentMethods {
		out = append(out, m)
	}
	return out
}

// Prefix 4 digit per provider untuk nomor virtual account simulasi.
var vaPrefixes = map[string]string{
	"bca":       "8800",
	"bni":       "8810",
	"bri":       "8820",
	"mandiri":   "8830",
	"permata":   "8840",
	"gopay":     "8850",
	"ovo":       "8860",
	"dana":      "8870",
	"shopeepay": "8880",
}

const (
	vaMarker        = "88"
	vaDefaultPrefix = "9900"
	qrPayloadPrefix = "KEDAIPOS.QR"
)

// VirtualAccountNumber membentuk nomor VA simulasi: prefix provider (4 digit,
// fallback ke prefix default untuk provider tak dikenal) + marker "88" + 6
// digit terakhir order id. Deterministik untuk pasangan (provider, orderID).
func VirtualAccountNumber(provider string, orderID uint) string {
	prefix, ok := vaPrefixes[strings.ToLower(provider)]
	if !ok {
		prefix = vaDefaultPrefix
	}
	return fmt.Sprintf("%s%s%06d", prefix, vaMarker, orderID%1000000)
}

// QRPayload adalah string yang di-encode ke QR: prefix tetap + order id +
// nominal.
func QRPayload(orderID uint, amount float64) string {
	return fmt.Sprintf("%s|%d|%.0f", qrPayloadPrefix, orderID, amount)
}

// QRImageRef me-render payload jadi PNG dan mengembalikannya sebagai data URI
// yang bisa langsung ditampilkan di halaman pembayaran.
func QRImageRef(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
