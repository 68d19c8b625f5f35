package utils

import "errors"

var (
	// validation
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrInvalidRelation      = errors.New("unknown family relation kind")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidDate          = errors.New("invalid date value")
	ErrInvalidDateRange     = errors.New("date range exceeds 30 days")
	ErrSecondDateNotAllowed = errors.New("second cleaning date requires a twice-yearly plan")
	ErrMultiYearNotAllowed  = errors.New("plan does not allow multi-year subscriptions")
	ErrFileTypeNotAllowed   = errors.New("file type not allowed")
	ErrFileTooLarge         = errors.New("file exceeds maximum size")
	ErrInvalidPayload       = errors.New("malformed event payload")

	// authorization
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotResourceOwner   = errors.New("caller is not the resource owner")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrOtpInvalid         = errors.New("otp is invalid or expired")

	// not found
	ErrAccountNotFound = errors.New("account not found")
	ErrPlanNotFound    = errors.New("subscription plan not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrProfileNotFound = errors.New("memorial profile not found")
	ErrFlowerNotFound  = errors.New("flower not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrNotFound        = errors.New("resource not found")

	// conflict
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrSlugAlreadyExists  = errors.New("profile slug already taken")

	// upstream / infrastructure
	ErrDatabaseError  = errors.New("database error")
	ErrPaymentGateway = errors.New("payment gateway error")
	ErrStorageGateway = errors.New("storage gateway error")
)

// RequireOwner is the single ownership predicate for the memorial aggregate:
// a profile and everything it owns may only be mutated by its owner email.
func RequireOwner(ownerEmail, callerEmail string) error {
	if ownerEmail == "" || callerEmail == "" || ownerEmail != callerEmail {
		return ErrNotResourceOwner
	}
	return nil
}
