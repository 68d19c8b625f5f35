package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingRepo)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	planRepo repositories.PlanRepository,
	flowerRepo repositories.FlowerRepository,
	churchRepo repositories.ChurchRepository,
	payments services.PaymentService,
) services.BookingService {
	return services.NewBookingService(bookingRepo, planRepo, flowerRepo, churchRepo, payments)
}
