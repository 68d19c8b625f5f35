package controllers_fx

import (
	"go.uber.org/fx"

	"gravecare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewMemorialController),
	fx.Provide(controllers.NewGuestBookController),
	fx.Provide(controllers.NewCartController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewRevenueController),
	fx.Provide(controllers.NewQrController),
	fx.Provide(controllers.NewContactController))
