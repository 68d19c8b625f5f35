package request_models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	// Pointer so an explicit 0 (remove the line) passes required validation.
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

type CheckoutRequest struct {
	ShippingAddressID *string `json:"shipping_address_id"`
	BillingAddressID  *string `json:"billing_address_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type ChurchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type PlanRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	FrequencyPerYear int     `json:"frequency_per_year" binding:"required,oneof=1 2"`
	Price            float64 `json:"price" binding:"required,gt=0"`
	AllowsMultiYear  bool    `json:"allows_multi_year"`
}

type FlowerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	InStock  bool    `json:"in_stock"`
	Quantity int     `json:"quantity"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	InStock     bool    `json:"in_stock"`
	Quantity    int     `json:"quantity"`
}

type OfferingRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
