package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// TableNumber berisi nomor meja atau nama pemesan untuk take-away
	TableNumber string      `gorm:"type:varchar(50);not null" json:"table_number"`
	UserID      *uint       `gorm:"index" json:"user_id,omitempty"`
	Note        string      `gorm:"type:text" json:"note"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalPrice  float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_price"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}
