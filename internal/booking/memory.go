package booking

import (
	"context"
	"slices"
	"sync"

	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
)

type memoryRepository struct {
	mu       sync.RWMutex
	bookings []*Booking
	latency  mockstore.Latency
}

// NewMemoryRepository returns a Repository keeping bookings in creation order.
func NewMemoryRepository(latency mockstore.Latency, seed []*Booking) Repository {
	r := &memoryRepository{latency: latency}
	for _, b := range seed {
		r.bookings = append(r.bookings, cloneBooking(b))
	}
	return r
}

func cloneBooking(b *Booking) *Booking {
	cp := *b
	cp.TentativeDates = slices.Clone(b.TentativeDates)
	if b.PropertyID != nil {
		id := *b.PropertyID
		cp.PropertyID = &id
	}
	return &cp
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	if err := r.latency.Wait(ctx, mockstore.BookingDelay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, cloneBooking(b))
	return nil
}

func (r *memoryRepository) find(id string) *Booking {
	for _, b := range r.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b := r.find(id)
	if b == nil {
		return nil, ErrNotFound
	}
	return cloneBooking(b), nil
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if filter.Matches(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.find(id)
	if b == nil {
		return nil, ErrNotFound
	}
	b.Status = status
	return cloneBooking(b), nil
}
