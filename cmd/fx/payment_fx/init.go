package payment_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gravecare/internal/repositories"
	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideStripeConfig,
	providePaymentService,
	provideRetryPolicy,
	provideWebhookEventRepo,
	provideWebhookService)

func provideStripeConfig() services.StripeConfig {
	price, err := strconv.ParseFloat(os.Getenv("MEMORIAL_PAGE_PRICE"), 64)
	if err != nil || price <= 0 {
		price = 50
	}
	return services.StripeConfig{
		SecretKey:         os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret:     os.Getenv("STRIPE_WEBHOOK_SECRET"),
		FrontendBaseURL:   os.Getenv("FRONTEND_BASE_URL"),
		Currency:          os.Getenv("CURRENCY"),
		MemorialPagePrice: price,
	}
}

func providePaymentService(
	cfg services.StripeConfig,
	orderRepo repositories.OrderRepository,
	bookingRepo repositories.BookingRepository,
	memorialRepo repositories.MemorialRepository,
) services.PaymentService {
	svc, err := services.NewStripePaymentService(cfg, orderRepo, bookingRepo, memorialRepo)
	if err != nil {
		log.Fatalf("Error creating payment service: %v", err)
	}
	return svc
}

func provideRetryPolicy() services.RetryPolicy {
	maxRetries, _ := strconv.Atoi(os.Getenv("WEBHOOK_MAX_RETRIES"))
	baseMs, _ := strconv.Atoi(os.Getenv("WEBHOOK_BASE_DELAY_MS"))
	maxMs, _ := strconv.Atoi(os.Getenv("WEBHOOK_MAX_DELAY_MS"))
	exponential := os.Getenv("WEBHOOK_EXPONENTIAL") != "false"

	if maxRetries == 0 {
		maxRetries = 3
	}
	return services.NewRetryPolicy(services.RetryConfig{
		MaxRetries:  maxRetries,
		BaseDelay:   time.Duration(baseMs) * time.Millisecond,
		MaxDelay:    time.Duration(maxMs) * time.Millisecond,
		Exponential: exponential,
	})
}

func provideWebhookEventRepo(db *gorm.DB) repositories.WebhookEventRepository {
	return repositories.NewWebhookEventRepository(db)
}

func provideWebhookService(
	cfg services.StripeConfig,
	policy services.RetryPolicy,
	eventRepo repositories.WebhookEventRepository,
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	bookings services.BookingService,
	memorials repositories.MemorialRepository,
	qr services.QrService,
	mailer services.IMailService,
) services.WebhookService {
	return services.NewWebhookService(cfg, policy, eventRepo, orderRepo, cartRepo, bookings, memorials, qr, mailer)
}
