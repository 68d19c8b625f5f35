package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
	webhookService services.WebhookService
}

func NewPaymentController(paymentService services.PaymentService, webhookService services.WebhookService) *PaymentController {
	return &PaymentController{paymentService: paymentService, webhookService: webhookService}
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for an order
// @Tags Payments
// @Security BearerAuth
// @Param request body request_models.CreatePaymentIntentRequest true "Intent payload"
// @Success 200 {object} utils.APIResponse
// @Router /stripe/payment-intent [post]
func (p *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req request_models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.CreatePaymentIntent(c.Request.Context(), req, callerEmail(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment intent created")
}

// CreateCheckoutSession godoc
// @Summary Create a hosted checkout session
// @Description Target is exactly one of order_id, booking_id, profile_slug
// @Tags Payments
// @Security BearerAuth
// @Param request body request_models.CreateCheckoutSessionRequest true "Session payload"
// @Success 200 {object} utils.APIResponse
// @Router /stripe/checkout-session [post]
func (p *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req request_models.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.CreateCheckoutSession(c.Request.Context(), req, callerEmail(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout session created")
}

// HandleWebhook godoc
// @Summary Stripe webhook receiver
// @Description Signature is verified over the raw body; handler failures still
// ack 200 so Stripe does not retry events we have recorded.
// @Tags Payments
// @Router /stripe/webhook [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must not
	// pass through any JSON binding first.
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable payload")
		return
	}

	result, err := p.webhookService.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		// Signature failure is the one case Stripe should see as rejected.
		utils.RespondError(c, http.StatusBadRequest, "Invalid signature")
		return
	}

	c.JSON(http.StatusOK, result)
}
