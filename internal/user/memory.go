package user

import (
	"context"
	"sync"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
)

type memoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]*User
	seq     *mockstore.Sequence
	latency mockstore.Latency
}

// NewMemoryRepository returns a Repository backed by process memory. Users
// are numbered from 1 in insertion order, seeds first.
func NewMemoryRepository(latency mockstore.Latency, seed []*User) Repository {
	r := &memoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
		seq:     mockstore.NewSequence(0),
		latency: latency,
	}
	for _, u := range seed {
		cp := *u
		cp.ID = r.seq.NextString()
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = time.Now().UTC()
		}
		r.byID[cp.ID] = &cp
		r.byEmail[cp.Email] = &cp
	}
	return r
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	if err := r.latency.Wait(ctx, mockstore.AuthDelay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Create does not wait: the preceding email lookup already paid the delay.
func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserExists
	}
	u.ID = r.seq.NextString()
	u.CreatedAt = time.Now().UTC()

	cp := *u
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp
	return nil
}
