package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type CartRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error)
	FindByID(ctx context.Context, id string) (*db_models.Cart, error)
	Insert(ctx context.Context, cart *db_models.Cart) error
	InsertItem(ctx context.Context, item *db_models.CartItem) error
	UpdateItem(ctx context.Context, item *db_models.CartItem) error
	DeleteItem(ctx context.Context, itemID string) error
	UpdateTotal(ctx context.Context, cartID uuid.UUID, total float64) error
	Delete(ctx context.Context, cartID uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).Preload("Items").First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id string) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).Preload("Items").First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Insert(ctx context.Context, cart *db_models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) InsertItem(ctx context.Context, item *db_models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateItem(ctx context.Context, item *db_models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.CartItem{}, "id = ?", itemID).Error
}

func (r *cartRepository) UpdateTotal(ctx context.Context, cartID uuid.UUID, total float64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Cart{}).
		Where("id = ?", cartID).
		Update("total", total).Error
}

func (r *cartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&db_models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&db_models.Cart{}, "id = ?", cartID).Error
}
