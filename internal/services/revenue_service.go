package services

import (
	"context"
	"time"

	"gravecare/internal/models/request_models"
	"gravecare/internal/models/response_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

const maxRangeDays = 30

type RevenueService interface {
	Report(ctx context.Context, query request_models.RevenueQuery) (*response_models.RevenueReport, error)
}

type revenueService struct {
	repo repositories.RevenueRepository
	now  func() time.Time
}

func NewRevenueService(repo repositories.RevenueRepository) RevenueService {
	return &revenueService{repo: repo, now: time.Now}
}

type reportWindow struct {
	start    time.Time
	end      time.Time
	interval string // date_trunc argument: "day" or "month"
	labels   []string
	buckets  []time.Time
}

func (s *revenueService) Report(ctx context.Context, query request_models.RevenueQuery) (*response_models.RevenueReport, error) {
	window, err := s.resolveWindow(query)
	if err != nil {
		return nil, err
	}

	// Neither toggle set means both series.
	wantCleanings := query.Cleanings || !query.Memorials
	wantMemorials := query.Memorials || !query.Cleanings

	report := &response_models.RevenueReport{Labels: window.labels}

	if wantCleanings {
		rows, err := s.repo.BookingRevenueSeries(ctx, window.start, window.end, window.interval)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		series, sum := alignSeries(window, rows)
		report.Cleanings = series
		report.Total += sum
	}
	if wantMemorials {
		rows, err := s.repo.OrderRevenueSeries(ctx, window.start, window.end, window.interval)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		series, sum := alignSeries(window, rows)
		report.Memorials = series
		report.Total += sum
	}

	return report, nil
}

func (s *revenueService) resolveWindow(query request_models.RevenueQuery) (*reportWindow, error) {
	switch query.View {
	case "month":
		ref := s.now().UTC()
		if query.Month != "" {
			parsed, err := time.Parse("2006-01", query.Month)
			if err != nil {
				return nil, utils.ErrInvalidDate
			}
			ref = parsed
		}
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		return dailyWindow(start, end), nil

	case "range":
		start, err := time.Parse("2006-01-02", query.Start)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		end, err := time.Parse("2006-01-02", query.End)
		if err != nil {
			return nil, utils.ErrInvalidDate
		}
		if end.Before(start) {
			return nil, utils.ErrInvalidDate
		}
		// Exactly 30 days is allowed; 31 is not.
		if utils.DaysBetween(start, end) > maxRangeDays {
			return nil, utils.ErrInvalidDateRange
		}
		return dailyWindow(start, end.AddDate(0, 0, 1).Add(-time.Second)), nil

	case "year", "":
		year := query.Year
		if year == 0 {
			year = s.now().UTC().Year()
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0).Add(-time.Second)

		window := &reportWindow{start: start, end: end, interval: "month"}
		for m := 0; m < 12; m++ {
			bucket := start.AddDate(0, m, 0)
			window.buckets = append(window.buckets, bucket)
			window.labels = append(window.labels, bucket.Format("2006-01"))
		}
		return window, nil
	}

	return nil, utils.ErrInvalidDate
}

func dailyWindow(start, end time.Time) *reportWindow {
	window := &reportWindow{start: start, end: end, interval: "day"}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		window.buckets = append(window.buckets, d)
		window.labels = append(window.labels, d.Format("2006-01-02"))
	}
	return window
}

// alignSeries zero-fills the window so every label has a value even when the
// bucket had no revenue.
func alignSeries(window *reportWindow, rows []repositories.BucketSum) ([]float64, float64) {
	byBucket := make(map[string]float64, len(rows))
	for _, row := range rows {
		byBucket[row.Bucket.UTC().Format(bucketKeyFormat(window.interval))] = row.Sum
	}

	series := make([]float64, len(window.buckets))
	total := 0.0
	for i, bucket := range window.buckets {
		v := byBucket[bucket.Format(bucketKeyFormat(window.interval))]
		series[i] = v
		total += v
	}
	return series, total
}

func bucketKeyFormat(interval string) string {
	if interval == "month" {
		return "2006-01"
	}
	return "2006-01-02"
}
