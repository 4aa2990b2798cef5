package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
)

type memoryRepository struct {
	mu       sync.RWMutex
	packages []*Package
	latency  mockstore.Latency
}

// NewMemoryRepository returns a read-only catalog held in memory.
func NewMemoryRepository(latency mockstore.Latency, seed []*Package) Repository {
	return &memoryRepository{
		packages: seed,
		latency:  latency,
	}
}

func clonePackage(p *Package) *Package {
	cp := *p
	cp.Features = slices.Clone(p.Features)
	return &cp
}

func (r *memoryRepository) List(ctx context.Context) ([]*Package, error) {
	if err := r.latency.Wait(ctx, mockstore.CatalogDelay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Package, len(r.packages))
	for i, p := range r.packages {
		out[i] = clonePackage(p)
	}
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*Package, error) {
	if err := r.latency.Wait(ctx, mockstore.CatalogDelay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.packages {
		if p.ID == id {
			return clonePackage(p), nil
		}
	}
	return nil, ErrNotFound
}
