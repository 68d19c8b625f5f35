package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type QrRepository interface {
	Insert(ctx context.Context, code *db_models.QrCode) error
	FindBySlug(ctx context.Context, slug string) (*db_models.QrCode, error)
	FindAll(ctx context.Context) ([]db_models.QrCode, error)
}

type qrRepository struct {
	db *gorm.DB
}

func NewQrRepository(db *gorm.DB) QrRepository {
	return &qrRepository{db: db}
}

func (r *qrRepository) Insert(ctx context.Context, code *db_models.QrCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *qrRepository) FindBySlug(ctx context.Context, slug string) (*db_models.QrCode, error) {
	var code db_models.QrCode
	err := r.db.WithContext(ctx).First(&code, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *qrRepository) FindAll(ctx context.Context) ([]db_models.QrCode, error) {
	var codes []db_models.QrCode
	err := r.db.WithContext(ctx).Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

type ContactRepository interface {
	Insert(ctx context.Context, msg *db_models.ContactMessage) error
	FindAll(ctx context.Context) ([]db_models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Insert(ctx context.Context, msg *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactRepository) FindAll(ctx context.Context) ([]db_models.ContactMessage, error) {
	var msgs []db_models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
