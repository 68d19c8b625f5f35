package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gravecare/cmd/fx/auth_fx"
	"gravecare/cmd/fx/booking_fx"
	"gravecare/cmd/fx/catalog_fx"
	"gravecare/cmd/fx/commerce_fx"
	"gravecare/cmd/fx/contact_fx"
	"gravecare/cmd/fx/controllers_fx"
	"gravecare/cmd/fx/db_fx"
	"gravecare/cmd/fx/mail_fx"
	"gravecare/cmd/fx/memorial_fx"
	"gravecare/cmd/fx/payment_fx"
	"gravecare/cmd/fx/qr_fx"
	"gravecare/cmd/fx/revenue_fx"
	"gravecare/cmd/fx/storage_fx"
	"gravecare/internal/api/controllers"
	"gravecare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		memorial_fx.Module,
		commerce_fx.Module,
		payment_fx.Module,
		revenue_fx.Module,
		qr_fx.Module,
		contact_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	bookingController *controllers.BookingController,
	memorialController *controllers.MemorialController,
	guestBookController *controllers.GuestBookController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	catalogController *controllers.CatalogController,
	paymentController *controllers.PaymentController,
	revenueController *controllers.RevenueController,
	qrController *controllers.QrController,
	contactController *controllers.ContactController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RoleMiddleware("ADMIN")

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/forgot-password", authController.ForgotPassword)
	authGroup.POST("/verify-otp", authController.VerifyOtp)
	authGroup.POST("/reset-password", authController.ResetPassword)
	authGroup.GET("/users", auth, admin, authController.ListUsers)
	authGroup.POST("/addresses", auth, authController.AddAddress)
	authGroup.GET("/addresses", auth, authController.ListAddresses)

	bookingGroup := r.Group("/booking")
	bookingGroup.POST("", auth, bookingController.CreateBooking)
	bookingGroup.GET("/mine", auth, bookingController.MyBookings)
	bookingGroup.GET("", auth, admin, bookingController.ListBookings)
	bookingGroup.PATCH("/:id/status", auth, admin, bookingController.UpdateStatus)

	memories := r.Group("/memories")
	memories.POST("", auth, memorialController.CreateProfile)
	memories.GET("/mine", auth, memorialController.MyProfiles)
	memories.GET("/:slug", memorialController.GetProfile)
	memories.PATCH("/:slug", auth, memorialController.UpdateProfile)
	memories.PUT("/:slug/biography", auth, memorialController.UpsertBiography)
	memories.POST("/:slug/gallery", auth, memorialController.AddGalleryImage)
	memories.DELETE("/:slug/gallery/:id", auth, memorialController.DeleteGalleryImage)
	memories.POST("/:slug/family", auth, memorialController.AddFamilyMember)
	memories.DELETE("/:slug/family/:id", auth, memorialController.DeleteFamilyMember)
	memories.POST("/:slug/events", auth, memorialController.AddEvent)
	memories.DELETE("/:slug/events/:id", auth, memorialController.DeleteEvent)
	memories.POST("/:slug/social-links", auth, memorialController.AddSocialLink)
	memories.DELETE("/:slug/social-links/:id", auth, memorialController.DeleteSocialLink)
	memories.POST("/:slug/image", auth, memorialController.SetProfileImage)

	memories.POST("/:slug/guestbook", guestBookController.LeaveMessage)
	memories.GET("/:slug/guestbook", guestBookController.ListApproved)
	memories.GET("/:slug/guestbook/all", auth, guestBookController.ListAll)
	memories.PATCH("/:slug/guestbook/:id/approve", auth, guestBookController.Approve)
	memories.DELETE("/:slug/guestbook/:id", auth, guestBookController.Delete)

	cartGroup := r.Group("/cart", auth)
	cartGroup.GET("", cartController.GetCart)
	cartGroup.POST("/items", cartController.AddItem)
	cartGroup.PATCH("/items/:id", cartController.UpdateItem)
	cartGroup.DELETE("/items/:id", cartController.RemoveItem)
	cartGroup.DELETE("", cartController.ClearCart)

	orderGroup := r.Group("/orders", auth)
	orderGroup.POST("/checkout", orderController.Checkout)
	orderGroup.GET("/mine", orderController.MyOrders)
	orderGroup.GET("/:id", orderController.GetOrder)
	orderGroup.GET("", admin, orderController.ListOrders)
	orderGroup.PATCH("/:id/status", admin, orderController.UpdateStatus)

	churchGroup := r.Group("/church")
	churchGroup.GET("", catalogController.ListChurches)
	churchGroup.GET("/:id", catalogController.GetChurch)
	churchGroup.POST("", auth, admin, catalogController.CreateChurch)

	subscriptionGroup := r.Group("/subscription")
	subscriptionGroup.GET("", catalogController.ListPlans)
	subscriptionGroup.GET("/:id", catalogController.GetPlan)
	subscriptionGroup.POST("", auth, admin, catalogController.CreatePlan)

	flowerGroup := r.Group("/flowers")
	flowerGroup.GET("", catalogController.ListFlowers)
	flowerGroup.POST("", auth, admin, catalogController.CreateFlower)
	flowerGroup.PUT("/:id", auth, admin, catalogController.UpdateFlower)
	flowerGroup.DELETE("/:id", auth, admin, catalogController.DeleteFlower)
	flowerGroup.POST("/:id/image", auth, admin, catalogController.SetFlowerImage)

	productGroup := r.Group("/products")
	productGroup.GET("", catalogController.ListProducts)
	productGroup.GET("/:id", catalogController.GetProduct)
	productGroup.POST("", auth, admin, catalogController.CreateProduct)
	productGroup.PUT("/:id", auth, admin, catalogController.UpdateProduct)
	productGroup.DELETE("/:id", auth, admin, catalogController.DeleteProduct)
	productGroup.POST("/:id/image", auth, admin, catalogController.SetProductImage)

	serviceGroup := r.Group("/services")
	serviceGroup.GET("", catalogController.ListOfferings)
	serviceGroup.POST("", auth, admin, catalogController.CreateOffering)
	serviceGroup.PUT("/:id", auth, admin, catalogController.UpdateOffering)
	serviceGroup.DELETE("/:id", auth, admin, catalogController.DeleteOffering)

	stripeGroup := r.Group("/stripe")
	stripeGroup.POST("/payment-intent", auth, paymentController.CreatePaymentIntent)
	stripeGroup.POST("/checkout-session", auth, paymentController.CreateCheckoutSession)
	// No auth middleware: Stripe signs the payload instead.
	stripeGroup.POST("/webhook", paymentController.HandleWebhook)

	r.GET("/revenue", auth, admin, revenueController.Report)

	qrGroup := r.Group("/qr")
	qrGroup.GET("", auth, admin, qrController.ListAll)
	qrGroup.GET("/:slug", qrController.GetBySlug)

	r.POST("/contact-form", contactController.Submit)
	r.GET("/contact-form", auth, admin, contactController.ListMessages)

	return r
}
