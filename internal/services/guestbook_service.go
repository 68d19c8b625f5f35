package services

import (
	"context"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type GuestBookService interface {
	// LeaveMessage is public: anyone visiting the page may sign, but the entry
	// stays hidden until the profile owner approves it.
	LeaveMessage(ctx context.Context, slug string, req request_models.GuestBookItemRequest) (*db_models.GuestBookItem, error)
	ListApproved(ctx context.Context, slug string) ([]db_models.GuestBookItem, error)
	ListAll(ctx context.Context, slug, callerEmail string) ([]db_models.GuestBookItem, error)
	Approve(ctx context.Context, slug, callerEmail, itemID string) error
	Delete(ctx context.Context, slug, callerEmail, itemID string) error
}

type guestBookService struct {
	repo     repositories.GuestBookRepository
	profiles repositories.MemorialRepository
}

func NewGuestBookService(repo repositories.GuestBookRepository, profiles repositories.MemorialRepository) GuestBookService {
	return &guestBookService{repo: repo, profiles: profiles}
}

func (s *guestBookService) loadProfile(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	profile, err := s.profiles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

func (s *guestBookService) LeaveMessage(ctx context.Context, slug string, req request_models.GuestBookItemRequest) (*db_models.GuestBookItem, error) {
	profile, err := s.loadProfile(ctx, slug)
	if err != nil {
		return nil, err
	}

	item := &db_models.GuestBookItem{
		ProfileID:  profile.ID,
		Name:       req.Name,
		Contact:    req.Contact,
		Message:    req.Message,
		PhotoURL:   req.PhotoURL,
		IsApproved: false,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *guestBookService) ListApproved(ctx context.Context, slug string) ([]db_models.GuestBookItem, error) {
	profile, err := s.loadProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FindApproved(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *guestBookService) ListAll(ctx context.Context, slug, callerEmail string) ([]db_models.GuestBookItem, error) {
	profile, err := s.loadProfile(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := utils.RequireOwner(profile.OwnerEmail, callerEmail); err != nil {
		return nil, err
	}
	items, err := s.repo.FindAllForProfile(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *guestBookService) Approve(ctx context.Context, slug, callerEmail, itemID string) error {
	if err := s.requireOwnedItem(ctx, slug, callerEmail, itemID); err != nil {
		return err
	}
	if err := s.repo.Approve(ctx, itemID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *guestBookService) Delete(ctx context.Context, slug, callerEmail, itemID string) error {
	if err := s.requireOwnedItem(ctx, slug, callerEmail, itemID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// requireOwnedItem checks both the profile ownership and that the item really
// belongs to that profile, so an owner cannot moderate someone else's page.
func (s *guestBookService) requireOwnedItem(ctx context.Context, slug, callerEmail, itemID string) error {
	profile, err := s.loadProfile(ctx, slug)
	if err != nil {
		return err
	}
	if err := utils.RequireOwner(profile.OwnerEmail, callerEmail); err != nil {
		return err
	}
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil || item.ProfileID != profile.ID {
		return utils.ErrNotFound
	}
	return nil
}
