package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type WebhookEventRepository interface {
	FindByEventID(ctx context.Context, eventID string) (*db_models.WebhookEvent, error)
	// Claim inserts a processing row for the event id; the unique index makes a
	// second claim for the same id fail, which is how replays are detected.
	Claim(ctx context.Context, event *db_models.WebhookEvent) error
	MarkProcessed(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, attempts int, lastErr string) error
}

type webhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

func (r *webhookEventRepository) FindByEventID(ctx context.Context, eventID string) (*db_models.WebhookEvent, error) {
	var event db_models.WebhookEvent
	err := r.db.WithContext(ctx).First(&event, "event_id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *webhookEventRepository) Claim(ctx context.Context, event *db_models.WebhookEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *webhookEventRepository) MarkProcessed(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.WebhookEvent{}).
		Where("event_id = ?", eventID).
		Update("status", db_models.WebhookEventProcessed).Error
}

func (r *webhookEventRepository) MarkFailed(ctx context.Context, eventID string, attempts int, lastErr string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.WebhookEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"status":   db_models.WebhookEventFailed,
			"attempts": attempts,
			"last_err": lastErr,
		}).Error
}
