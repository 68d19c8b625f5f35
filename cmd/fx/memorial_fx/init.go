package memorial_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
	"gravecare/pkg/storage"
)

var Module = fx.Provide(
	provideMemorialService,
	provideGuestBookService,
	provideMemorialRepo,
	provideGuestBookRepo)

func provideMemorialRepo(db *gorm.DB) repositories.MemorialRepository {
	return repositories.NewMemorialRepository(db)
}

func provideGuestBookRepo(db *gorm.DB) repositories.GuestBookRepository {
	return repositories.NewGuestBookRepository(db)
}

func provideMemorialService(repo repositories.MemorialRepository, gateway storage.Gateway) services.MemorialService {
	return services.NewMemorialService(repo, gateway)
}

func provideGuestBookService(repo repositories.GuestBookRepository, profiles repositories.MemorialRepository) services.GuestBookService {
	return services.NewGuestBookService(repo, profiles)
}
