package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type MemorialRepository interface {
	Insert(ctx context.Context, profile *db_models.DeadPersonProfile) error
	Update(ctx context.Context, profile *db_models.DeadPersonProfile) error
	FindBySlug(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error)
	FindBySlugFull(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]db_models.DeadPersonProfile, error)
	MarkPaid(ctx context.Context, slug string) error

	UpsertBiography(ctx context.Context, bio *db_models.Biography) error
	InsertGallery(ctx context.Context, entry *db_models.Gallery) error
	DeleteGallery(ctx context.Context, id string) (*db_models.Gallery, error)
	InsertFamily(ctx context.Context, member *db_models.Family) error
	DeleteFamily(ctx context.Context, id string) error
	InsertEvent(ctx context.Context, event *db_models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	InsertSocialLink(ctx context.Context, link *db_models.SocialLink) error
	DeleteSocialLink(ctx context.Context, id string) error
}

type memorialRepository struct {
	db *gorm.DB
}

func NewMemorialRepository(db *gorm.DB) MemorialRepository {
	return &memorialRepository{db: db}
}

func (r *memorialRepository) Insert(ctx context.Context, profile *db_models.DeadPersonProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *memorialRepository) Update(ctx context.Context, profile *db_models.DeadPersonProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *memorialRepository) FindBySlug(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	var profile db_models.DeadPersonProfile
	err := r.db.WithContext(ctx).First(&profile, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindBySlugFull loads the profile with every owned sub-entity for the public
// memorial page.
func (r *memorialRepository) FindBySlugFull(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	var profile db_models.DeadPersonProfile
	err := r.db.WithContext(ctx).
		Preload("Biography").
		Preload("Gallery").
		Preload("Family").
		Preload("Events").
		Preload("SocialLinks").
		First(&profile, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *memorialRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]db_models.DeadPersonProfile, error) {
	var profiles []db_models.DeadPersonProfile
	err := r.db.WithContext(ctx).Where("owner_email = ?", ownerEmail).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *memorialRepository) MarkPaid(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.DeadPersonProfile{}).
		Where("slug = ?", slug).
		Update("is_paid", true).Error
}

func (r *memorialRepository) UpsertBiography(ctx context.Context, bio *db_models.Biography) error {
	var existing db_models.Biography
	err := r.db.WithContext(ctx).First(&existing, "profile_id = ?", bio.ProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(bio).Error
		}
		return err
	}
	existing.Content = bio.Content
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *memorialRepository) InsertGallery(ctx context.Context, entry *db_models.Gallery) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// DeleteGallery removes the row and returns it so the caller can best-effort
// delete the stored image.
func (r *memorialRepository) DeleteGallery(ctx context.Context, id string) (*db_models.Gallery, error) {
	var entry db_models.Gallery
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *memorialRepository) InsertFamily(ctx context.Context, member *db_models.Family) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memorialRepository) DeleteFamily(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Family{}, "id = ?", id).Error
}

func (r *memorialRepository) InsertEvent(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *memorialRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id).Error
}

func (r *memorialRepository) InsertSocialLink(ctx context.Context, link *db_models.SocialLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *memorialRepository) DeleteSocialLink(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.SocialLink{}, "id = ?", id).Error
}
