package models

import "time"

// Status ketersediaan menu
const (
	MenuStatusAvailable = "available"
	MenuStatusSoldOut   = "sold_out"
)

type Menu struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CategoryID  uint         `gorm:"not null" json:"category_id"`
	Category    MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64      `gorm:"type:decimal(12,2);not null" json:"price"`
	Status      string       `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Description string       `gorm:"type:text" json:"description"`
	ImageUrl    *string      `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}

// IsAvailable -> menu masih bisa dipesan
func (m *Menu) IsAvailable() bool {
	return m.Status == MenuStatusAvailable
}
