package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// FrontendBaseURL anchors the success/cancel redirects. Missing it is a
	// startup-time fatal, not a per-request error.
	FrontendBaseURL string
	Currency        string
	// MemorialPagePrice is the flat price of publishing a memorial page.
	MemorialPagePrice float64
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req request_models.CreatePaymentIntentRequest, userEmail string) (*response_models.PaymentIntentResponse, error)
	CreateCheckoutSession(ctx context.Context, req request_models.CreateCheckoutSessionRequest, userEmail string) (*response_models.CheckoutSessionResponse, error)
	// CreateBookingCheckout is the recurrence engine's entry point: a session
	// for the first booking row of a batch, carrying the group metadata.
	CreateBookingCheckout(ctx context.Context, booking *db_models.Booking, userEmail string) (*response_models.CheckoutSessionResponse, error)
	// CreateOrderCheckout carries the cart id so the webhook can clear the
	// cart once the order is paid.
	CreateOrderCheckout(ctx context.Context, order *db_models.Order, cartID, userEmail string) (*response_models.CheckoutSessionResponse, error)
}

type stripePaymentService struct {
	cfg          StripeConfig
	orderRepo    repositories.OrderRepository
	bookingRepo  repositories.BookingRepository
	memorialRepo repositories.MemorialRepository
}

func NewStripePaymentService(
	cfg StripeConfig,
	orderRepo repositories.OrderRepository,
	bookingRepo repositories.BookingRepository,
	memorialRepo repositories.MemorialRepository,
) (PaymentService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing stripe secret key")
	}
	if cfg.FrontendBaseURL == "" {
		return nil, errors.New("missing frontend base URL for redirect construction")
	}
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyUSD)
	}
	cfg.FrontendBaseURL = NormalizeURL(cfg.FrontendBaseURL)
	stripe.Key = cfg.SecretKey

	return &stripePaymentService{
		cfg:          cfg,
		orderRepo:    orderRepo,
		bookingRepo:  bookingRepo,
		memorialRepo: memorialRepo,
	}, nil
}

// MinorUnits converts a major-unit amount to the provider's minor currency
// unit (cents), rounding rather than truncating.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NormalizeURL prefixes https:// when the caller omitted a scheme.
func NormalizeURL(u string) string {
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return "https://" + u
	}
	return u
}

func (s *stripePaymentService) CreatePaymentIntent(ctx context.Context, req request_models.CreatePaymentIntentRequest, userEmail string) (*response_models.PaymentIntentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(order.Total)),
		Currency: stripe.String(s.cfg.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("user_email", userEmail)

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("stripe: create payment intent for order %s: %v", order.OrderNumber, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentGateway, err)
	}

	return &response_models.PaymentIntentResponse{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (s *stripePaymentService) CreateCheckoutSession(ctx context.Context, req request_models.CreateCheckoutSessionRequest, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	switch {
	case req.OrderID != "":
		order, err := s.orderRepo.FindByID(ctx, req.OrderID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if order == nil {
			return nil, utils.ErrOrderNotFound
		}
		metadata := map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"user_email":   userEmail,
		}
		if req.ProfileSlug != "" {
			metadata["profile_slug"] = req.ProfileSlug
		}
		name := fmt.Sprintf("Memorial order %s", order.OrderNumber)
		return s.newSession(name, order.Total, req.SuccessURL, req.CancelURL, metadata)

	case req.BookingID != "":
		booking, err := s.bookingRepo.FindByBookingID(ctx, req.BookingID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if booking == nil {
			return nil, utils.ErrBookingNotFound
		}
		metadata := bookingMetadata(booking, userEmail)
		if req.ProfileSlug != "" {
			metadata["profile_slug"] = req.ProfileSlug
		}
		name := fmt.Sprintf("Grave cleaning %s", booking.BookingID)
		return s.newSession(name, booking.Amount, req.SuccessURL, req.CancelURL, metadata)

	case req.ProfileSlug != "":
		profile, err := s.memorialRepo.FindBySlug(ctx, req.ProfileSlug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if profile == nil {
			return nil, utils.ErrProfileNotFound
		}
		metadata := map[string]string{
			"profile_slug": profile.Slug,
			"user_email":   userEmail,
		}
		name := fmt.Sprintf("Memorial page for %s %s", profile.FirstName, profile.LastName)
		return s.newSession(name, s.cfg.MemorialPagePrice, req.SuccessURL, req.CancelURL, metadata)
	}

	return nil, utils.ErrNotFound
}

func (s *stripePaymentService) CreateBookingCheckout(ctx context.Context, booking *db_models.Booking, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	name := fmt.Sprintf("Grave cleaning %s (%s)", booking.MemorialName, booking.BookingID)
	return s.newSession(name, booking.Amount, "", "", bookingMetadata(booking, userEmail))
}

func (s *stripePaymentService) CreateOrderCheckout(ctx context.Context, order *db_models.Order, cartID, userEmail string) (*response_models.CheckoutSessionResponse, error) {
	metadata := map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"user_email":   userEmail,
	}
	if cartID != "" {
		metadata["cart_id"] = cartID
	}
	name := fmt.Sprintf("Memorial order %s", order.OrderNumber)
	return s.newSession(name, order.Total, "", "", metadata)
}

func bookingMetadata(booking *db_models.Booking, userEmail string) map[string]string {
	metadata := map[string]string{
		"booking_id": booking.BookingID,
		"user_email": userEmail,
	}
	if booking.ParentBookingID != nil {
		metadata["parent_booking_id"] = *booking.ParentBookingID
	}
	return metadata
}

func (s *stripePaymentService) newSession(name string, amount float64, successURL, cancelURL string, metadata map[string]string) (*response_models.CheckoutSessionResponse, error) {
	if successURL == "" {
		successURL = s.cfg.FrontendBaseURL + "/payment/success"
	}
	if cancelURL == "" {
		cancelURL = s.cfg.FrontendBaseURL + "/payment/cancel"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(NormalizeURL(successURL)),
		CancelURL:  stripe.String(NormalizeURL(cancelURL)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.cfg.Currency),
					UnitAmount: stripe.Int64(MinorUnits(amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		log.Printf("stripe: create checkout session %q: %v", name, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentGateway, err)
	}

	return &response_models.CheckoutSessionResponse{
		SessionID:     sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		ExpiresAt:     sess.ExpiresAt,
	}, nil
}
