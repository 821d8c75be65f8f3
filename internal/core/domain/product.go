package domain

import "time"

// Product is an inventory item. CategoryID must resolve at creation and
// update time. CreatedByUserID is a weak back-reference for attribution
// only; updates never change it.
type Product struct {
	ID              int       `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	Description     string    `json:"description" gorm:"size:250"`
	StockQuantity   int       `json:"stock_quantity" gorm:"not null"`
	Price           float64   `json:"price" gorm:"type:decimal(18,2);not null"`
	PictureURL      string    `json:"picture_url" gorm:"size:250"`
	CategoryID      int       `json:"category_id" gorm:"not null"`
	Category        *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedByUserID *int      `json:"created_by_user_id"`
	CreatedByUser   *User     `json:"-" gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT"`
	CreatedAt       time.Time `json:"created_at"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`
}
