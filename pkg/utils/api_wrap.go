package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors onto the HTTP taxonomy:
// validation 400, auth 401/403, not found 404, conflict 409, everything
// else 500 with the detail kept out of the response body.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrInvalidRelation),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrSecondDateNotAllowed),
		errors.Is(err, ErrMultiYearNotAllowed),
		errors.Is(err, ErrFileTypeNotAllowed),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrInvalidPayload):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrOtpInvalid),
		errors.Is(err, ErrAccountDisabled):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrNotResourceOwner):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrFlowerNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrSlugAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrPaymentGateway),
		errors.Is(err, ErrStorageGateway):
		log.Printf("upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "upstream service error")

	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")

	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
