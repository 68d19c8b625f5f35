package response_models

type PaymentIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

type CheckoutSessionResponse struct {
	SessionID     string `json:"session_id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
	ExpiresAt     int64  `json:"expires_at"`
}

// HandlerResult is the structured outcome of processing one webhook event.
// The HTTP layer still acks the provider with 200 on failure; the result is
// recorded for operator follow-up.
type HandlerResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RevenueReport carries aligned label/series arrays for charting; buckets with
// no activity are zero-filled.
type RevenueReport struct {
	Labels    []string  `json:"labels"`
	Cleanings []float64 `json:"cleanings,omitempty"`
	Memorials []float64 `json:"memorials,omitempty"`
	Total     float64   `json:"total"`
}
