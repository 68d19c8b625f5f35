package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type GuestBookRepository interface {
	Insert(ctx context.Context, item *db_models.GuestBookItem) error
	FindByID(ctx context.Context, id string) (*db_models.GuestBookItem, error)
	FindApproved(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error)
	FindAllForProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type guestBookRepository struct {
	db *gorm.DB
}

func NewGuestBookRepository(db *gorm.DB) GuestBookRepository {
	return &guestBookRepository{db: db}
}

func (r *guestBookRepository) Insert(ctx context.Context, item *db_models.GuestBookItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *guestBookRepository) FindByID(ctx context.Context, id string) (*db_models.GuestBookItem, error) {
	var item db_models.GuestBookItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *guestBookRepository) FindApproved(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error) {
	var items []db_models.GuestBookItem
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND is_approved = TRUE", profileID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *guestBookRepository) FindAllForProfile(ctx context.Context, profileID uuid.UUID) ([]db_models.GuestBookItem, error) {
	var items []db_models.GuestBookItem
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *guestBookRepository) Approve(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.GuestBookItem{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

func (r *guestBookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.GuestBookItem{}, "id = ?", id).Error
}
