package db_models

import "gorm.io/datatypes"

type WebhookEventStatus string

const (
	WebhookEventProcessing WebhookEventStatus = "processing"
	WebhookEventProcessed  WebhookEventStatus = "processed"
	WebhookEventFailed     WebhookEventStatus = "failed"
)

// WebhookEvent is the persisted provider-event log. The unique EventID index is
// what gives replayed deliveries exactly-once effective semantics.
type WebhookEvent struct {
	BaseModel
	EventID   string `gorm:"uniqueIndex"`
	EventType string `gorm:"index"`
	Provider  string `gorm:"index;default:'stripe'"`

	Status   WebhookEventStatus `gorm:"type:varchar(16);index"`
	Attempts int                `gorm:"default:0"`
	LastErr  string             `gorm:"type:text"`

	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

type ContactMessage struct {
	BaseModel
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string `gorm:"type:text"`
}
