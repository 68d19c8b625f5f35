package response_models

import (
	"time"

	"gravecare/internal/models/db_models"
)

type BookingResponse struct {
	BookingID          string     `json:"booking_id"`
	ParentBookingID    *string    `json:"parent_booking_id,omitempty"`
	MemorialName       string     `json:"memorial_name"`
	PlotNumber         string     `json:"plot_number"`
	FirstCleaningDate  time.Time  `json:"first_cleaning_date"`
	SecondCleaningDate *time.Time `json:"second_cleaning_date,omitempty"`
	AnniversaryDate    *time.Time `json:"anniversary_date,omitempty"`
	SubscribedYears    int        `json:"subscribed_years"`
	Amount             float64    `json:"amount"`
	Status             string     `json:"status"`
	IsBought           bool       `json:"is_bought"`
}

type CreateBookingResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	CheckoutURL string            `json:"checkout_url"`
	SessionID   string            `json:"session_id"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func ToBookingResponse(b db_models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:          b.BookingID,
		ParentBookingID:    b.ParentBookingID,
		MemorialName:       b.MemorialName,
		PlotNumber:         b.PlotNumber,
		FirstCleaningDate:  b.FirstCleaningDate,
		SecondCleaningDate: b.SecondCleaningDate,
		AnniversaryDate:    b.AnniversaryDate,
		SubscribedYears:    b.SubscribedYears,
		Amount:             b.Amount,
		Status:             string(b.Status),
		IsBought:           b.IsBought,
	}
}

func ToBookingResponses(bookings []db_models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}
