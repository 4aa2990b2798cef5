package property

import (
	"context"
	"slices"
	"sync"

	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
)

type memoryRepository struct {
	mu      sync.RWMutex
	props   []*Property
	latency mockstore.Latency
}

// NewMemoryRepository returns a Repository holding seed in id order.
func NewMemoryRepository(latency mockstore.Latency, seed []*Property) Repository {
	props := make([]*Property, len(seed))
	for i, p := range seed {
		props[i] = cloneProperty(p)
	}
	return &memoryRepository{props: props, latency: latency}
}

func cloneProperty(p *Property) *Property {
	cp := *p
	cp.Amenities = slices.Clone(p.Amenities)
	cp.RoomTypes = slices.Clone(p.RoomTypes)
	return &cp
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Property, error) {
	if err := r.latency.Wait(ctx, mockstore.PropertyDelay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Property
	for _, p := range r.props {
		if filter.Matches(p) {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *memoryRepository) find(id int64) *Property {
	for _, p := range r.props {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.find(id)
	if p == nil {
		return nil, ErrNotFound
	}
	return cloneProperty(p), nil
}

func (r *memoryRepository) UpdateBulkBooking(ctx context.Context, id int64, enabled bool) (*Property, error) {
	if err := r.latency.Wait(ctx, mockstore.PropertyDelay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, ErrNotFound
	}
	p.BulkBookingEnabled = enabled
	return cloneProperty(p), nil
}

func (r *memoryRepository) UpdateImage(ctx context.Context, id int64, imageURL, thumbnailURL string) (*Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, ErrNotFound
	}
	p.ImageURL = imageURL
	p.ThumbnailURL = thumbnailURL
	return cloneProperty(p), nil
}
