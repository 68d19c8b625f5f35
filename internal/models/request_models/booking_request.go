package request_models

import "time"

type CreateBookingRequest struct {
	MemorialName       string     `json:"memorial_name" binding:"required"`
	PlotNumber         string     `json:"plot_number" binding:"required"`
	FirstCleaningDate  time.Time  `json:"first_cleaning_date" binding:"required" time_format:"2006-01-02"`
	SecondCleaningDate *time.Time `json:"second_cleaning_date"`
	AnniversaryDate    *time.Time `json:"anniversary_date"`
	PlanID             string     `json:"plan_id" binding:"required"`
	FlowerID           *string    `json:"flower_id"`
	SubscribedYears    int        `json:"subscribed_years"`

	ChurchName  string `json:"church_name" binding:"required"`
	ChurchCity  string `json:"church_city"`
	ChurchState string `json:"church_state"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	DueFrom  string `form:"due_from"` // YYYY-MM-DD, 7-day window start
}
