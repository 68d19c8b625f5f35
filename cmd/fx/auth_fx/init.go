package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideAuthService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository, mailService services.IMailService) services.AuthService {
	return services.NewAuthService(userRepo, mailService)
}
