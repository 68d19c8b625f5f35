package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *db_models.Order) error
	FindByID(ctx context.Context, id string) (*db_models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]db_models.Order, error)
	FindAll(ctx context.Context, page, pageSize int) ([]db_models.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status db_models.OrderStatus, note string) error
	MarkPaid(ctx context.Context, id string, status db_models.OrderStatus, metadata []byte) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Insert(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindAll(ctx context.Context, page, pageSize int) ([]db_models.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&db_models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status db_models.OrderStatus, note string) error {
	updates := map[string]interface{}{"status": status}
	if note != "" {
		updates["note"] = note
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// MarkPaid writes absolute values so a replayed webhook converges to the same
// end state.
func (r *orderRepository) MarkPaid(ctx context.Context, id string, status db_models.OrderStatus, metadata []byte) error {
	updates := map[string]interface{}{
		"is_paid": true,
		"status":  status,
	}
	if metadata != nil {
		updates["payment_metadata"] = metadata
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}
