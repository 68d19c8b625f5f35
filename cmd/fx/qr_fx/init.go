package qr_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
	"gravecare/pkg/storage"
)

var Module = fx.Provide(
	provideQrService, provideQrRepo)

func provideQrRepo(db *gorm.DB) repositories.QrRepository {
	return repositories.NewQrRepository(db)
}

func provideQrService(repo repositories.QrRepository, gateway storage.Gateway, cfg services.StripeConfig) services.QrService {
	return services.NewQrService(repo, gateway, cfg)
}
