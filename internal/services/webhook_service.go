package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/datatypes"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

// Event types that must page an operator when local retries are exhausted.
var criticalEventTypes = map[string]bool{
	"payment_intent.succeeded":      true,
	"payment_intent.payment_failed": true,
	"invoice.payment_succeeded":     true,
	"invoice.payment_failed":        true,
	"checkout.session.completed":    true,
}

// SignatureVerifier validates the raw payload against the provider signature.
// Injectable so tests can exercise the pipeline without real Stripe headers.
type SignatureVerifier func(payload []byte, header, secret string) (stripe.Event, error)

type WebhookService interface {
	// HandleEvent verifies, dedups and dispatches one provider event. A non-nil
	// error is returned only for signature failures; every other failure is
	// reported inside the HandlerResult so the HTTP layer can still ack 200.
	HandleEvent(ctx context.Context, payload []byte, signature string) (response_models.HandlerResult, error)
}

type webhookService struct {
	secret string
	verify SignatureVerifier
	policy RetryPolicy

	eventRepo repositories.WebhookEventRepository
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	bookings  BookingService
	memorials repositories.MemorialRepository
	qr        QrService
	mailer    IMailService
}

func NewWebhookService(
	cfg StripeConfig,
	policy RetryPolicy,
	eventRepo repositories.WebhookEventRepository,
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	bookings BookingService,
	memorials repositories.MemorialRepository,
	qr QrService,
	mailer IMailService,
) WebhookService {
	return &webhookService{
		secret:    cfg.WebhookSecret,
		verify:    webhook.ConstructEvent,
		policy:    policy,
		eventRepo: eventRepo,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookings:  bookings,
		memorials: memorials,
		qr:        qr,
		mailer:    mailer,
	}
}

func (s *webhookService) HandleEvent(ctx context.Context, payload []byte, signature string) (response_models.HandlerResult, error) {
	event, err := s.verify(payload, signature, s.secret)
	if err != nil {
		// Terminal: never retried, never recorded as a processable event.
		log.Printf("webhook: signature verification failed: %v", err)
		return response_models.HandlerResult{}, fmt.Errorf("%w: webhook signature verification failed", utils.ErrInvalidCredentials)
	}

	eventType := string(event.Type)

	existing, err := s.eventRepo.FindByEventID(ctx, event.ID)
	if err != nil {
		return failure(eventType, "idempotency lookup failed", err), nil
	}
	if existing != nil && existing.Status == db_models.WebhookEventProcessed {
		log.Printf("webhook: event %s (%s) already processed, skipping", event.ID, eventType)
		return response_models.HandlerResult{Success: true, Message: "event already processed"}, nil
	}

	if existing == nil {
		claim := &db_models.WebhookEvent{
			EventID:   event.ID,
			EventType: eventType,
			Provider:  "stripe",
			Status:    db_models.WebhookEventProcessing,
			Payload:   datatypes.JSON(event.Data.Raw),
		}
		if err := s.eventRepo.Claim(ctx, claim); err != nil {
			// A concurrent delivery of the same id claimed first.
			log.Printf("webhook: event %s already claimed: %v", event.ID, err)
			return response_models.HandlerResult{Success: true, Message: "duplicate delivery"}, nil
		}
	}

	attempts := 0
	for {
		attempts++
		err = s.dispatch(ctx, event)
		if err == nil {
			break
		}
		log.Printf("webhook: event %s (%s) attempt %d failed: %v", event.ID, eventType, attempts, err)
		if !s.policy.ShouldRetry(err, attempts) {
			break
		}
		delay := s.policy.NextDelay(attempts - 1)
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(delay):
			continue
		}
		break
	}

	if err != nil {
		if dbErr := s.eventRepo.MarkFailed(ctx, event.ID, attempts, err.Error()); dbErr != nil {
			log.Printf("webhook: event %s: recording failure: %v", event.ID, dbErr)
		}
		if criticalEventTypes[eventType] {
			s.alertAdmin(event.ID, eventType, attempts, err)
		}
		return failure(eventType, fmt.Sprintf("handler failed after %d attempts", attempts), err), nil
	}

	if dbErr := s.eventRepo.MarkProcessed(ctx, event.ID); dbErr != nil {
		log.Printf("webhook: event %s: recording success: %v", event.ID, dbErr)
	}
	return response_models.HandlerResult{Success: true, Message: "event processed"}, nil
}

func failure(eventType, message string, err error) response_models.HandlerResult {
	return response_models.HandlerResult{
		Success: false,
		Message: fmt.Sprintf("%s: %s", eventType, message),
		Error:   err.Error(),
	}
}

func (s *webhookService) alertAdmin(eventID, eventType string, attempts int, err error) {
	subject := fmt.Sprintf("webhook %s exhausted retries", eventType)
	body := fmt.Sprintf("Event %s (%s) failed after %d attempts: %v", eventID, eventType, attempts, err)
	if mailErr := s.mailer.SendAdminAlert(subject, body); mailErr != nil {
		log.Printf("webhook: admin alert for event %s failed: %v", eventID, mailErr)
	}
}

// dispatch applies exactly one local effect per event type. Unrecognized and
// no-local-effect types are logged and acked so the provider stops retrying.
func (s *webhookService) dispatch(ctx context.Context, event stripe.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("webhook: handler for %s panicked: %v", event.ID, r)
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	switch string(event.Type) {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("%w: parse checkout session: %v", utils.ErrInvalidPayload, err)
		}
		if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
			log.Printf("webhook: session %s completed but unpaid (%s), ignoring", session.ID, session.PaymentStatus)
			return nil
		}
		return s.applyPaymentSuccess(ctx, session.Metadata, event.Data.Raw)

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("%w: parse payment intent: %v", utils.ErrInvalidPayload, err)
		}
		return s.applyPaymentSuccess(ctx, intent.Metadata, event.Data.Raw)

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("%w: parse payment intent: %v", utils.ErrInvalidPayload, err)
		}
		return s.applyPaymentFailure(ctx, intent)

	default:
		// Subscriptions, disputes, invoices and anything else with no local
		// effect: ack so the provider does not retry forever.
		log.Printf("webhook: no local effect for event type %s (%s)", event.Type, event.ID)
		return nil
	}
}

// applyPaymentSuccess reconciles by whatever target the metadata names: a
// storefront order (plus its cart), a booking group, a memorial profile.
func (s *webhookService) applyPaymentSuccess(ctx context.Context, metadata map[string]string, raw []byte) error {
	if orderID := metadata["order_id"]; orderID != "" {
		if err := s.orderRepo.MarkPaid(ctx, orderID, db_models.OrderStatusProcessing, raw); err != nil {
			return fmt.Errorf("%w: mark order %s paid: %v", utils.ErrDatabaseError, orderID, err)
		}
		if cartID := metadata["cart_id"]; cartID != "" {
			id, err := uuid.Parse(cartID)
			if err != nil {
				log.Printf("webhook: bad cart_id %q in metadata, skipping cart cleanup", cartID)
			} else if err := s.cartRepo.Delete(ctx, id); err != nil {
				return fmt.Errorf("%w: clear cart %s: %v", utils.ErrDatabaseError, cartID, err)
			}
		}
	}

	if bookingID := metadata["booking_id"]; bookingID != "" {
		if err := s.bookings.MarkAsBought(ctx, bookingID); err != nil {
			return fmt.Errorf("mark booking %s bought: %w", bookingID, err)
		}
	}

	if slug := metadata["profile_slug"]; slug != "" {
		if err := s.memorials.MarkPaid(ctx, slug); err != nil {
			return fmt.Errorf("%w: mark profile %s paid: %v", utils.ErrDatabaseError, slug, err)
		}
		// Payment makes the page live and scannable: persist its QR exactly once.
		if _, err := s.qr.EnsureForSlug(ctx, slug); err != nil {
			return fmt.Errorf("ensure qr for %s: %w", slug, err)
		}
	}

	return nil
}

func (s *webhookService) applyPaymentFailure(ctx context.Context, intent stripe.PaymentIntent) error {
	orderID := intent.Metadata["order_id"]
	if orderID == "" {
		log.Printf("webhook: payment failure %s carries no order_id, nothing to cancel", intent.ID)
		return nil
	}
	reason := "payment failed"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		reason = "payment failed: " + intent.LastPaymentError.Msg
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, db_models.OrderStatusCancelled, reason); err != nil {
		return fmt.Errorf("%w: cancel order %s: %v", utils.ErrDatabaseError, orderID, err)
	}
	return nil
}
