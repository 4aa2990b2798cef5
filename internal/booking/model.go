package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrHostCannotBook      = apperror.New(http.StatusForbidden, "hosts cannot book packages")
	ErrTooManyDates        = apperror.New(http.StatusBadRequest, "selected dates exceed the nights in the package")
	ErrDuplicateDate       = apperror.New(http.StatusBadRequest, "each date may be selected once")
	ErrPropertyNotBookable = apperror.New(http.StatusBadRequest, "property does not accept bulk bookings")
	ErrInvalidAmount       = apperror.New(http.StatusBadRequest, "total amount must be positive")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrAlreadyCancelled    = apperror.New(http.StatusConflict, "booking is already cancelled")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a purchased package, optionally tied to a property and to
// tentative stay dates.
type Booking struct {
	ID             string
	UserID         string
	PackageID      int64
	PropertyID     *int64
	Status         Status
	TentativeDates []calendar.Date
	TotalAmount    int64
	CreatedAt      time.Time
}

// Active reports whether the booking still holds its dates.
func (b *Booking) Active() bool {
	return b.Status != StatusCancelled
}

// FirstDate is the earliest tentative date, or "" when none were chosen.
func (b *Booking) FirstDate() calendar.Date {
	var first calendar.Date
	for _, d := range b.TentativeDates {
		if first == "" || d.Before(first) {
			first = d
		}
	}
	return first
}

type Filter struct {
	UserID     string
	PropertyID *int64
	Status     Status
}

func (f Filter) Matches(b *Booking) bool {
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if f.PropertyID != nil && (b.PropertyID == nil || *b.PropertyID != *f.PropertyID) {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	return true
}

// Summary is a host's view of one property's bookings.
type Summary struct {
	PropertyID    int64
	Revenue       int64 // confirmed bookings only
	BookedDates   []calendar.Date
	OccupancyRate int // percent of a 30 day window
	TotalBookings int
	Confirmed     int
	Pending       int
	Upcoming      []*Booking
}

// OccupancyWindow is the number of days occupancy is measured against.
const OccupancyWindow = 30
