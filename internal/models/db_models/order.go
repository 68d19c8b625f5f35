package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is the immutable snapshot taken at checkout.
type Order struct {
	BaseModel
	OrderNumber string    `gorm:"uniqueIndex"`
	UserID      uuid.UUID `gorm:"index"`
	UserEmail   string    `gorm:"index"`

	Status OrderStatus `gorm:"type:varchar(16);index;default:'pending'"`
	IsPaid bool        `gorm:"default:false"`
	Total  float64
	Note   string // cancellation reason, operator remarks

	ShippingAddressID *uuid.UUID
	BillingAddressID  *uuid.UUID

	// Provider-side receipt snapshot written by webhook reconciliation.
	PaymentMetadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"index"`
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}
