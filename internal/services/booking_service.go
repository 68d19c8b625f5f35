package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, userEmail string, req request_models.CreateBookingRequest) (*response_models.CreateBookingResponse, error)
	MarkAsBought(ctx context.Context, bookingID string) error
	GetUserBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, status string) error
	ListBookings(ctx context.Context, query request_models.ListBookingsQuery) (*response_models.BookingListResponse, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	planRepo    repositories.PlanRepository
	flowerRepo  repositories.FlowerRepository
	churchRepo  repositories.ChurchRepository
	payments    PaymentService
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	planRepo repositories.PlanRepository,
	flowerRepo repositories.FlowerRepository,
	churchRepo repositories.ChurchRepository,
	payments PaymentService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		planRepo:    planRepo,
		flowerRepo:  flowerRepo,
		churchRepo:  churchRepo,
		payments:    payments,
	}
}

// CreateBooking expands one purchase request into one booking row per
// subscribed year. All rows share a parent-group id and start PENDING; a
// checkout session is created for the first year only. The rest of the group
// flips when the webhook marks the group bought.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, userEmail string, req request_models.CreateBookingRequest) (*response_models.CreateBookingResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	years := req.SubscribedYears
	if years < 1 {
		years = 1
	}
	if years > 1 && !plan.AllowsMultiYear {
		return nil, utils.ErrMultiYearNotAllowed
	}
	if req.SecondCleaningDate != nil && plan.FrequencyPerYear != 2 {
		return nil, utils.ErrSecondDateNotAllowed
	}

	var flowerID *uuid.UUID
	if req.FlowerID != nil && *req.FlowerID != "" {
		flower, err := s.flowerRepo.FindByID(ctx, *req.FlowerID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if flower == nil {
			return nil, utils.ErrFlowerNotFound
		}
		flowerID = &flower.ID
	}

	// A new church row per request; the source system never dedups these.
	church := &db_models.Church{
		Name:  req.ChurchName,
		City:  req.ChurchCity,
		State: req.ChurchState,
	}
	if err := s.churchRepo.Insert(ctx, church); err != nil {
		return nil, utils.ErrDatabaseError
	}

	code := utils.GenerateBookingCode()
	parentID := code + "-PARENT"

	bookings := make([]db_models.Booking, 0, years)
	for i := 0; i < years; i++ {
		first := utils.AddCalendarYears(req.FirstCleaningDate, i)

		var second *time.Time
		if req.SecondCleaningDate != nil {
			d := utils.AddCalendarYears(*req.SecondCleaningDate, i)
			second = &d
		}
		var anniversary *time.Time
		if req.AnniversaryDate != nil {
			d := utils.AddCalendarYears(*req.AnniversaryDate, i)
			anniversary = &d
		}

		booking := db_models.Booking{
			BookingID:          fmt.Sprintf("%s-%d", code, i+1),
			ParentBookingID:    &parentID,
			UserID:             userID,
			ChurchID:           church.ID,
			PlanID:             plan.ID,
			FlowerID:           flowerID,
			MemorialName:       req.MemorialName,
			PlotNumber:         req.PlotNumber,
			FirstCleaningDate:  first,
			SecondCleaningDate: second,
			AnniversaryDate:    anniversary,
			SubscribedYears:    years,
			// Plan price only; a selected flower is recorded on the row but
			// billed separately, matching the source system's pricing.
			Amount:   plan.Price,
			Status:   db_models.BookingStatusPending,
			IsBought: false,
		}
		if err := s.bookingRepo.Insert(ctx, &booking); err != nil {
			// Earlier years are already committed; no rollback here.
			return nil, utils.ErrDatabaseError
		}
		bookings = append(bookings, booking)
	}

	checkout, err := s.payments.CreateBookingCheckout(ctx, &bookings[0], userEmail)
	if err != nil {
		return nil, err
	}

	return &response_models.CreateBookingResponse{
		Bookings:    response_models.ToBookingResponses(bookings),
		CheckoutURL: checkout.URL,
		SessionID:   checkout.SessionID,
	}, nil
}

// MarkAsBought flips a booking to bought/completed, along with every sibling
// when it belongs to a group. Re-running on an already completed booking is a
// no-op success.
func (s *bookingService) MarkAsBought(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}
	if booking.IsBought && booking.Status == db_models.BookingStatusCompleted {
		return nil
	}

	if booking.ParentBookingID != nil {
		if err := s.bookingRepo.MarkGroupBought(ctx, *booking.ParentBookingID); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}
	if err := s.bookingRepo.MarkBought(ctx, bookingID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.ToBookingResponses(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, status string) error {
	parsed, ok := parseBookingStatus(status)
	if !ok {
		return utils.ErrInvalidStatus
	}
	booking, err := s.bookingRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, parsed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, query request_models.ListBookingsQuery) (*response_models.BookingListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.BookingFilter{Page: page, PageSize: pageSize}
	if query.Status != "" {
		parsed, ok := parseBookingStatus(query.Status)
		if !ok {
			return nil, utils.ErrInvalidStatus
		}
		filter.Status = &parsed
	}
	if query.DueFrom != "" {
		from, err := time.Parse("2006-01-02", query.DueFrom)
		if err != nil {
			log.Printf("booking: bad due_from %q: %v", query.DueFrom, err)
			return nil, utils.ErrInvalidDate
		}
		filter.DueFrom = &from
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.BookingListResponse{
		Bookings: response_models.ToBookingResponses(bookings),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func parseBookingStatus(s string) (db_models.BookingStatus, bool) {
	switch db_models.BookingStatus(s) {
	case db_models.BookingStatusPending,
		db_models.BookingStatusInProgress,
		db_models.BookingStatusCompleted,
		db_models.BookingStatusCancelled:
		return db_models.BookingStatus(s), true
	}
	return "", false
}
