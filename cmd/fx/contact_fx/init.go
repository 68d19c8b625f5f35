package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideContactService, provideContactRepo)

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(repo repositories.ContactRepository, mailer services.IMailService) services.ContactService {
	return services.NewContactService(repo, mailer)
}
