package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

// BucketSum is one time bucket of summed revenue, as returned by date_trunc.
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    float64   `gorm:"column:sum"`
}

type RevenueRepository interface {
	// BookingRevenueSeries sums bought cleaning bookings per bucket.
	BookingRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error)
	// OrderRevenueSeries sums paid memorial orders per bucket.
	OrderRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error)
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// created_at columns hold unix seconds (see BaseModel), so convert before
// truncating: date_trunc('day', to_timestamp(created_at)).
func (r *revenueRepository) BookingRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Select("date_trunc(?, to_timestamp(created_at)) AS bucket, SUM(amount) AS sum", interval).
		Where("is_bought = TRUE").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}

func (r *revenueRepository) OrderRevenueSeries(ctx context.Context, start, end time.Time, interval string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Select("date_trunc(?, to_timestamp(created_at)) AS bucket, SUM(total) AS sum", interval).
		Where("is_paid = TRUE").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}
