package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry keeps live wizards by id. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewRegistry() *Registry {
	return &Registry{wizards: make(map[string]*Wizard)}
}

// Add stores w under a fresh id.
func (r *Registry) Add(w *Wizard) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.wizards[id] = w
	return id
}

func (r *Registry) Get(id string) (*Wizard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return w, nil
}

func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wizards[id]; !ok {
		return ErrNotFound
	}
	delete(r.wizards, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wizards)
}

// Prune drops wizards idle since before cutoff and returns how many went.
// A wizard busy in a slow step holds its own lock, so idle times are read
// without holding the registry lock.
func (r *Registry) Prune(cutoff time.Time) int {
	r.mu.RLock()
	live := make(map[string]*Wizard, len(r.wizards))
	for id, w := range r.wizards {
		live[id] = w
	}
	r.mu.RUnlock()

	var stale []string
	for id, w := range live {
		if w.LastActive().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, id := range stale {
		if w, ok := r.wizards[id]; ok && w == live[id] {
			delete(r.wizards, id)
			n++
		}
	}
	return n
}

// Sweep prunes wizards idle for longer than ttl every interval until ctx ends.
func (r *Registry) Sweep(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Prune(now.Add(-ttl)); n > 0 {
				zap.L().Info("pruned idle booking wizards", zap.Int("count", n))
			}
		}
	}
}
