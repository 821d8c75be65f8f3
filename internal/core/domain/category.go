package domain

// Category owns the foreign-key back-reference of its products. Deleting a
// category never cascades; it is blocked while products reference it.
type Category struct {
	ID       int       `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}
