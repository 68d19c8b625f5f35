package db_models

import "github.com/google/uuid"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash string
	Role         UserRole `gorm:"type:varchar(16);default:'USER'"`
	IsActive     bool     `gorm:"default:true"`

	// Password-reset OTP lifecycle. Both fields are cleared once the OTP is consumed.
	ResetOtp          *string
	ResetOtpExpiresAt *int64

	Addresses []Address `gorm:"foreignKey:UserID"`
	Bookings  []Booking `gorm:"foreignKey:UserID"`
	Orders    []Order   `gorm:"foreignKey:UserID"`
}

type Address struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}
