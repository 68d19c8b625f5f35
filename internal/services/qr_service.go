package services

import (
	"context"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"gravecare/internal/models/db_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/storage"
	"gravecare/pkg/utils"
)

const qrImageSize = 512

type QrService interface {
	// EnsureForSlug generates and stores the QR image for a memorial page
	// exactly once; subsequent calls return the existing row.
	EnsureForSlug(ctx context.Context, slug string) (*db_models.QrCode, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.QrCode, error)
	ListAll(ctx context.Context) ([]db_models.QrCode, error)
}

type qrService struct {
	repo            repositories.QrRepository
	storage         storage.Gateway
	frontendBaseURL string
}

func NewQrService(repo repositories.QrRepository, gateway storage.Gateway, cfg StripeConfig) QrService {
	return &qrService{
		repo:            repo,
		storage:         gateway,
		frontendBaseURL: NormalizeURL(cfg.FrontendBaseURL),
	}
}

func (s *qrService) EnsureForSlug(ctx context.Context, slug string) (*db_models.QrCode, error) {
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	pageURL := fmt.Sprintf("%s/memories/%s", s.frontendBaseURL, slug)
	png, err := qrcode.Encode(pageURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", slug, err)
	}

	url, err := s.storage.Upload(ctx, png, "image/png", "qr")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageGateway, err)
	}

	code := &db_models.QrCode{
		Slug:     slug,
		FileName: slug + ".png",
		URL:      url,
	}
	if err := s.repo.Insert(ctx, code); err != nil {
		// A concurrent webhook delivery may have inserted first.
		if row, findErr := s.repo.FindBySlug(ctx, slug); findErr == nil && row != nil {
			return row, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return code, nil
}

func (s *qrService) GetBySlug(ctx context.Context, slug string) (*db_models.QrCode, error) {
	code, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if code == nil {
		return nil, utils.ErrNotFound
	}
	return code, nil
}

func (s *qrService) ListAll(ctx context.Context) ([]db_models.QrCode, error) {
	codes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return codes, nil
}
