package commerce_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideCartService,
	provideOrderService,
	provideCartRepo,
	provideOrderRepo)

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) services.CartService {
	return services.NewCartService(cartRepo, productRepo)
}

func provideOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, payments services.PaymentService) services.OrderService {
	return services.NewOrderService(orderRepo, cartRepo, payments)
}
