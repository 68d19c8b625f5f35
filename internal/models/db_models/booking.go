package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// Booking is one yearly cleaning visit. A multi-year purchase produces one row
// per year, all sharing ParentBookingID; they transition together on payment.
type Booking struct {
	BaseModel
	BookingID       string  `gorm:"uniqueIndex"` // human-readable code, e.g. GC-7KQ2M9XA-1
	ParentBookingID *string `gorm:"index"`       // e.g. GC-7KQ2M9XA-PARENT, shared by the batch

	UserID   uuid.UUID  `gorm:"index"`
	ChurchID uuid.UUID  `gorm:"index"`
	PlanID   uuid.UUID  `gorm:"index"`
	FlowerID *uuid.UUID `gorm:"index"`

	MemorialName string
	PlotNumber   string

	FirstCleaningDate  time.Time `gorm:"type:date"`
	SecondCleaningDate *time.Time
	AnniversaryDate    *time.Time

	SubscribedYears int           `gorm:"default:1"`
	Amount          float64       // plan price; flower cost is billed separately
	Status          BookingStatus `gorm:"type:varchar(16);index;default:'PENDING'"`
	IsBought        bool          `gorm:"default:false"`

	User   User             `gorm:"foreignKey:UserID"`
	Church Church           `gorm:"foreignKey:ChurchID"`
	Plan   SubscriptionPlan `gorm:"foreignKey:PlanID"`
	Flower *Flower          `gorm:"foreignKey:FlowerID"`
}
