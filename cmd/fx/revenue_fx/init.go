package revenue_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideRevenueService, provideRevenueRepo)

func provideRevenueRepo(db *gorm.DB) repositories.RevenueRepository {
	return repositories.NewRevenueRepository(db)
}

func provideRevenueService(repo repositories.RevenueRepository) services.RevenueService {
	return services.NewRevenueService(repo)
}
