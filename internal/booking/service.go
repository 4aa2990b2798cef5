package booking

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

type CreateRequest struct {
	UserID      string
	PackageID   int64
	PropertyID  *int64
	Dates       []calendar.Date
	TotalAmount int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, userID string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	Cancel(ctx context.Context, id, userID string) (*Booking, error)
	// BookedDates lists the distinct dates held by active bookings of a property.
	BookedDates(ctx context.Context, propertyID int64) ([]calendar.Date, error)
	HostSummary(ctx context.Context, propertyID int64, hostID string) (*Summary, error)
}

// Narrow views of the services a booking is validated against.
type (
	UserLookup interface {
		GetByID(ctx context.Context, id string) (*user.User, error)
	}
	PackageLookup interface {
		GetByID(ctx context.Context, id int64) (*catalog.Package, error)
	}
	PropertyLookup interface {
		GetByID(ctx context.Context, id int64) (*property.Property, error)
	}
)

type service struct {
	repo       Repository
	users      UserLookup
	packages   PackageLookup
	properties PropertyLookup
	ids        *idGenerator
	now        func() time.Time
}

func NewService(repo Repository, users UserLookup, packages PackageLookup, properties PropertyLookup) Service {
	return &service{
		repo:       repo,
		users:      users,
		packages:   packages,
		properties: properties,
		ids:        &idGenerator{now: time.Now},
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Only guests book
	u, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u.IsHost() {
		return nil, ErrHostCannotBook
	}

	// 2. Package exists and covers the dates
	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if len(req.Dates) > pkg.TotalNights {
		return nil, ErrTooManyDates
	}
	seen := make(calendar.Set, len(req.Dates))
	for _, d := range req.Dates {
		if seen.Has(d) {
			return nil, ErrDuplicateDate
		}
		seen[d] = struct{}{}
	}

	// 3. Optional property must accept bulk bookings
	if req.PropertyID != nil {
		p, err := s.properties.GetByID(ctx, *req.PropertyID)
		if err != nil {
			return nil, err
		}
		if !p.BulkBookingEnabled {
			return nil, ErrPropertyNotBookable
		}
	}

	if req.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	dates := slices.Clone(req.Dates)
	slices.Sort(dates)

	b := &Booking{
		ID:             s.ids.next(),
		UserID:         u.ID,
		PackageID:      pkg.ID,
		PropertyID:     req.PropertyID,
		Status:         StatusConfirmed,
		TentativeDates: dates,
		TotalAmount:    req.TotalAmount,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Other guests' bookings are reported as missing.
	if b.UserID != userID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.List(ctx, Filter{UserID: userID})
}

func (s *service) Cancel(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

func (s *service) BookedDates(ctx context.Context, propertyID int64) ([]calendar.Date, error) {
	bookings, err := s.repo.List(ctx, Filter{PropertyID: &propertyID})
	if err != nil {
		return nil, err
	}
	return bookedDates(bookings), nil
}

func bookedDates(bookings []*Booking) []calendar.Date {
	set := make(calendar.Set)
	for _, b := range bookings {
		if !b.Active() {
			continue
		}
		for _, d := range b.TentativeDates {
			set[d] = struct{}{}
		}
	}
	out := make([]calendar.Date, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func (s *service) HostSummary(ctx context.Context, propertyID int64, hostID string) (*Summary, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.HostID != hostID {
		return nil, ErrPermissionDenied
	}

	bookings, err := s.repo.List(ctx, Filter{PropertyID: &propertyID})
	if err != nil {
		return nil, err
	}

	sum := &Summary{PropertyID: propertyID}
	today := calendar.DateOf(s.now())
	for _, b := range bookings {
		switch b.Status {
		case StatusConfirmed:
			sum.Revenue += b.TotalAmount
			sum.Confirmed++
		case StatusPending:
			sum.Pending++
		}
		if b.Active() {
			sum.TotalBookings++
			if first := b.FirstDate(); first != "" && !first.Before(today) {
				sum.Upcoming = append(sum.Upcoming, b)
			}
		}
	}
	slices.SortFunc(sum.Upcoming, func(a, b *Booking) int {
		return a.FirstDate().Time().Compare(b.FirstDate().Time())
	})

	sum.BookedDates = bookedDates(bookings)
	sum.OccupancyRate = occupancy(len(sum.BookedDates))
	return sum, nil
}

func occupancy(bookedDays int) int {
	rate := int(math.Round(float64(bookedDays) / OccupancyWindow * 100))
	return min(rate, 100)
}
