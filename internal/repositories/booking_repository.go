package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

// BookingFilter drives the admin listing. DueFrom enables the 7-day due-window
// query: first cleaning date inside [DueFrom, DueFrom+7d), or first date before
// DueFrom with the second cleaning date inside the window.
type BookingFilter struct {
	Page     int
	PageSize int
	Status   *db_models.BookingStatus
	DueFrom  *time.Time
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*db_models.Booking, error)
	FindByParentID(ctx context.Context, parentID string) ([]db_models.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]db_models.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]db_models.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID string, status db_models.BookingStatus) error
	MarkGroupBought(ctx context.Context, parentID string) error
	MarkBought(ctx context.Context, bookingID string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByParentID(ctx context.Context, parentID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("parent_booking_id = ?", parentID).
		Order("first_cleaning_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]db_models.Booking, int64, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Booking{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.DueFrom != nil {
		windowStart := *filter.DueFrom
		windowEnd := windowStart.AddDate(0, 0, 7)
		tx = tx.Where(
			"(first_cleaning_date >= ? AND first_cleaning_date < ?) OR "+
				"(first_cleaning_date < ? AND second_cleaning_date >= ? AND second_cleaning_date < ?)",
			windowStart, windowEnd, windowStart, windowStart, windowEnd,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []db_models.Booking
	err := tx.
		Order("first_cleaning_date ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, status db_models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("status", status).Error
}

// MarkGroupBought is a single bulk update writing absolute values, so running
// it twice (including concurrently) converges to the same end state.
func (r *bookingRepository) MarkGroupBought(ctx context.Context, parentID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("parent_booking_id = ?", parentID).
		Updates(map[string]interface{}{
			"is_bought": true,
			"status":    db_models.BookingStatusCompleted,
		}).Error
}

func (r *bookingRepository) MarkBought(ctx context.Context, bookingID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]interface{}{
			"is_bought": true,
			"status":    db_models.BookingStatusCompleted,
		}).Error
}
