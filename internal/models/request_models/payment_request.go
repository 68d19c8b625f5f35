package request_models

type CreatePaymentIntentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

type CreateCheckoutSessionRequest struct {
	// Exactly one of the three targets must be set.
	OrderID   string `json:"order_id"`
	BookingID string `json:"booking_id"`
	// Memorial profile purchase: the slug whose page goes live on payment.
	ProfileSlug string `json:"profile_slug"`

	SuccessURL string `json:"success_url" binding:"required"`
	CancelURL  string `json:"cancel_url" binding:"required"`
}

type RevenueQuery struct {
	// View selects bucketing: "month" (daily buckets of the given month),
	// "year" (monthly buckets, the default), or "range" (daily, max 30 days).
	View      string `form:"view"`
	Month     string `form:"month"` // YYYY-MM
	Year      int    `form:"year"`
	Start     string `form:"start"` // YYYY-MM-DD, range view
	End       string `form:"end"`
	Cleanings bool   `form:"cleanings"`
	Memorials bool   `form:"memorials"`
}
