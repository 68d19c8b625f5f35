package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/storage"
	"gravecare/pkg/utils"
)

var profileImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

const profileImageMaxBytes = 10 << 20

type MemorialService interface {
	CreateProfile(ctx context.Context, ownerEmail string, req request_models.CreateProfileRequest) (*db_models.DeadPersonProfile, error)
	UpdateProfile(ctx context.Context, slug, callerEmail string, req request_models.UpdateProfileRequest) (*db_models.DeadPersonProfile, error)
	GetProfile(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error)
	GetOwnProfiles(ctx context.Context, ownerEmail string) ([]db_models.DeadPersonProfile, error)

	UpsertBiography(ctx context.Context, slug, callerEmail, content string) error

	AddGalleryImage(ctx context.Context, slug, callerEmail string, data []byte, contentType, caption string) (*db_models.Gallery, error)
	DeleteGalleryImage(ctx context.Context, slug, callerEmail, entryID string) error

	AddFamilyMember(ctx context.Context, slug, callerEmail string, req request_models.FamilyRequest) (*db_models.Family, error)
	DeleteFamilyMember(ctx context.Context, slug, callerEmail, memberID string) error

	AddEvent(ctx context.Context, slug, callerEmail string, req request_models.EventRequest) (*db_models.Event, error)
	DeleteEvent(ctx context.Context, slug, callerEmail, eventID string) error

	AddSocialLink(ctx context.Context, slug, callerEmail string, req request_models.SocialLinkRequest) (*db_models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, slug, callerEmail, linkID string) error

	SetProfileImage(ctx context.Context, slug, callerEmail string, data []byte, contentType string, background bool) (string, error)
}

type memorialService struct {
	repo    repositories.MemorialRepository
	storage storage.Gateway
}

func NewMemorialService(repo repositories.MemorialRepository, gateway storage.Gateway) MemorialService {
	return &memorialService{repo: repo, storage: gateway}
}

// loadOwned is the ownership gate in front of every aggregate mutation.
func (s *memorialService) loadOwned(ctx context.Context, slug, callerEmail string) (*db_models.DeadPersonProfile, error) {
	profile, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	if err := utils.RequireOwner(profile.OwnerEmail, callerEmail); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *memorialService) CreateProfile(ctx context.Context, ownerEmail string, req request_models.CreateProfileRequest) (*db_models.DeadPersonProfile, error) {
	profile := &db_models.DeadPersonProfile{
		OwnerEmail:    ownerEmail,
		Slug:          utils.GenerateSlug(req.FirstName, req.LastName),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BornDate:      req.BornDate,
		DeathDate:     req.DeathDate,
		MemorialPlace: req.MemorialPlace,
	}
	if err := s.repo.Insert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

func (s *memorialService) UpdateProfile(ctx context.Context, slug, callerEmail string, req request_models.UpdateProfileRequest) (*db_models.DeadPersonProfile, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.BornDate != nil {
		profile.BornDate = req.BornDate
	}
	if req.DeathDate != nil {
		profile.DeathDate = req.DeathDate
	}
	if req.MemorialPlace != nil {
		profile.MemorialPlace = *req.MemorialPlace
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

// GetProfile returns the full public page. Guestbook entries are loaded
// separately by the guestbook service so only approved ones ever ship here.
func (s *memorialService) GetProfile(ctx context.Context, slug string) (*db_models.DeadPersonProfile, error) {
	profile, err := s.repo.FindBySlugFull(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

func (s *memorialService) GetOwnProfiles(ctx context.Context, ownerEmail string) ([]db_models.DeadPersonProfile, error) {
	profiles, err := s.repo.FindByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profiles, nil
}

func (s *memorialService) UpsertBiography(ctx context.Context, slug, callerEmail, content string) error {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return err
	}
	bio := &db_models.Biography{ProfileID: profile.ID, Content: content}
	if err := s.repo.UpsertBiography(ctx, bio); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *memorialService) AddGalleryImage(ctx context.Context, slug, callerEmail string, data []byte, contentType, caption string) (*db_models.Gallery, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := storage.ValidateUpload(contentType, int64(len(data)), profileImageTypes, profileImageMaxBytes); err != nil {
		return nil, err
	}

	url, err := s.storage.Upload(ctx, data, contentType, fmt.Sprintf("profiles/%s/gallery", slug))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageGateway, err)
	}

	entry := &db_models.Gallery{ProfileID: profile.ID, ImageURL: url, Caption: caption}
	if err := s.repo.InsertGallery(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *memorialService) DeleteGalleryImage(ctx context.Context, slug, callerEmail, entryID string) error {
	if _, err := s.loadOwned(ctx, slug, callerEmail); err != nil {
		return err
	}

	entry, err := s.repo.DeleteGallery(ctx, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if entry == nil {
		return utils.ErrNotFound
	}
	// Orphaned objects are tolerable; a failed row delete is not.
	if err := s.storage.Delete(ctx, entry.ImageURL); err != nil {
		log.Printf("memorial: deleting gallery object %s: %v", entry.ImageURL, err)
	}
	return nil
}

func (s *memorialService) AddFamilyMember(ctx context.Context, slug, callerEmail string, req request_models.FamilyRequest) (*db_models.Family, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return nil, err
	}

	relation, err := db_models.ParseRelationKind(req.Relation)
	if err != nil {
		return nil, utils.ErrInvalidRelation
	}

	member := &db_models.Family{
		ProfileID: profile.ID,
		Relation:  relation,
		FullName:  req.FullName,
		PhotoURL:  req.PhotoURL,
		LinkSlug:  req.LinkSlug,
	}
	if err := s.repo.InsertFamily(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return member, nil
}

func (s *memorialService) DeleteFamilyMember(ctx context.Context, slug, callerEmail, memberID string) error {
	if _, err := s.loadOwned(ctx, slug, callerEmail); err != nil {
		return err
	}
	if err := s.repo.DeleteFamily(ctx, memberID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *memorialService) AddEvent(ctx context.Context, slug, callerEmail string, req request_models.EventRequest) (*db_models.Event, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return nil, err
	}

	event := &db_models.Event{
		ProfileID:   profile.ID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Images:      pq.StringArray(req.Images),
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (s *memorialService) DeleteEvent(ctx context.Context, slug, callerEmail, eventID string) error {
	if _, err := s.loadOwned(ctx, slug, callerEmail); err != nil {
		return err
	}
	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *memorialService) AddSocialLink(ctx context.Context, slug, callerEmail string, req request_models.SocialLinkRequest) (*db_models.SocialLink, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return nil, err
	}

	link := &db_models.SocialLink{ProfileID: profile.ID, Platform: req.Platform, URL: req.URL}
	if err := s.repo.InsertSocialLink(ctx, link); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return link, nil
}

func (s *memorialService) DeleteSocialLink(ctx context.Context, slug, callerEmail, linkID string) error {
	if _, err := s.loadOwned(ctx, slug, callerEmail); err != nil {
		return err
	}
	if err := s.repo.DeleteSocialLink(ctx, linkID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SetProfileImage replaces either the portrait or the page background and
// best-effort deletes the superseded object.
func (s *memorialService) SetProfileImage(ctx context.Context, slug, callerEmail string, data []byte, contentType string, background bool) (string, error) {
	profile, err := s.loadOwned(ctx, slug, callerEmail)
	if err != nil {
		return "", err
	}
	if err := storage.ValidateUpload(contentType, int64(len(data)), profileImageTypes, profileImageMaxBytes); err != nil {
		return "", err
	}

	url, err := s.storage.Upload(ctx, data, contentType, fmt.Sprintf("profiles/%s/photos", slug))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorageGateway, err)
	}

	old := profile.ProfileImageURL
	if background {
		old = profile.BackgroundImageURL
		profile.BackgroundImageURL = url
	} else {
		profile.ProfileImageURL = url
	}
	if err := s.repo.Update(ctx, profile); err != nil {
		return "", utils.ErrDatabaseError
	}

	if old != "" {
		if err := s.storage.Delete(ctx, old); err != nil {
			log.Printf("memorial: deleting replaced image %s: %v", old, err)
		}
	}
	return url, nil
}
