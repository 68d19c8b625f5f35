package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
	"gravecare/pkg/storage"
)

var Module = fx.Provide(
	provideCatalogService,
	provideChurchRepo,
	providePlanRepo,
	provideFlowerRepo,
	provideProductRepo,
	provideOfferingRepo)

func provideChurchRepo(db *gorm.DB) repositories.ChurchRepository {
	return repositories.NewChurchRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideFlowerRepo(db *gorm.DB) repositories.FlowerRepository {
	return repositories.NewFlowerRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideOfferingRepo(db *gorm.DB) repositories.OfferingRepository {
	return repositories.NewOfferingRepository(db)
}

func provideCatalogService(
	churchRepo repositories.ChurchRepository,
	planRepo repositories.PlanRepository,
	flowerRepo repositories.FlowerRepository,
	productRepo repositories.ProductRepository,
	offeringRepo repositories.OfferingRepository,
	gateway storage.Gateway,
) services.CatalogService {
	return services.NewCatalogService(churchRepo, planRepo, flowerRepo, productRepo, offeringRepo, gateway)
}
