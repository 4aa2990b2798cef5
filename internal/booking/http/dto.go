package http

import (
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
)

type CreateBookingRequest struct {
	PackageID   int64    `json:"package_id" binding:"required,min=1"`
	PropertyID  *int64   `json:"property_id" binding:"omitempty,min=1"`
	Dates       []string `json:"dates"`
	TotalAmount int64    `json:"total_amount" binding:"required,min=1"`
}

type BookingResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PackageID      int64     `json:"package_id"`
	PropertyID     *int64    `json:"property_id,omitempty"`
	Status         string    `json:"status"`
	TentativeDates []string  `json:"tentative_dates"`
	TotalAmount    int64     `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		PackageID:      b.PackageID,
		PropertyID:     b.PropertyID,
		Status:         string(b.Status),
		TentativeDates: calendar.Strings(b.TentativeDates),
		TotalAmount:    b.TotalAmount,
		CreatedAt:      b.CreatedAt,
	}
}

func newBookingResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}

type SummaryResponse struct {
	PropertyID    int64             `json:"property_id"`
	Revenue       int64             `json:"revenue"`
	BookedDates   []string          `json:"booked_dates"`
	OccupancyRate int               `json:"occupancy_rate"`
	TotalBookings int               `json:"total_bookings"`
	Confirmed     int               `json:"confirmed"`
	Pending       int               `json:"pending"`
	Upcoming      []BookingResponse `json:"upcoming"`
}

func NewSummaryResponse(s *booking.Summary) SummaryResponse {
	return SummaryResponse{
		PropertyID:    s.PropertyID,
		Revenue:       s.Revenue,
		BookedDates:   calendar.Strings(s.BookedDates),
		OccupancyRate: s.OccupancyRate,
		TotalBookings: s.TotalBookings,
		Confirmed:     s.Confirmed,
		Pending:       s.Pending,
		Upcoming:      newBookingResponses(s.Upcoming),
	}
}
