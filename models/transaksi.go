package models

import "time"

// Transaksi adalah catatan pelunasan untuk satu order. Constraint unik pada
// OrderID menjamin satu order tidak pernah punya dua transaksi.
type Transaksi struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID" json:"order"`
	UserID        *uint     `gorm:"index" json:"user_id,omitempty"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(30);not null" json:"payment_method"`
	Change        float64   `gorm:"type:decimal(12,2);not null;default:0.00" json:"change"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (Transaksi) TableName() string {
	return "transaksi"
}
