package db_models

import "github.com/google/uuid"

// Cart is the per-user mutable basket. Total is derived from items and
// recomputed on every mutation, never incremented in place.
type Cart struct {
	BaseModel
	UserID uuid.UUID  `gorm:"uniqueIndex"` // one cart per user
	Total  float64
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`
	Name      string
	UnitPrice float64 // snapshotted at add time
	Quantity  int
}
