package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingService
}

func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking godoc
// @Summary Create a cleaning subscription booking
// @Description Expands a multi-year purchase into one booking per year and returns a checkout URL
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /booking [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(callerID(c))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	resp, err := b.bookingService.CreateBooking(c.Request.Context(), userID, callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Booking created")
}

// MyBookings godoc
// @Summary List the caller's bookings
// @Tags Bookings
// @Security BearerAuth
// @Router /booking/mine [get]
func (b *BookingController) MyBookings(c *gin.Context) {
	bookings, err := b.bookingService.GetUserBookings(c.Request.Context(), callerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

// UpdateStatus godoc
// @Summary Update a booking status (admin)
// @Tags Bookings
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Router /booking/{id}/status [patch]
func (b *BookingController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated")
}

// ListBookings godoc
// @Summary List bookings with filters (admin)
// @Description Supports pagination, status filter and a 7-day due window starting at due_from
// @Tags Bookings
// @Security BearerAuth
// @Router /booking [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	var query request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := b.bookingService.ListBookings(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
