package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()

	w, err := New(nil, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	id := r.Add(w)
	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, w, got)
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.Remove(id))
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Remove(id), ErrNotFound)
}

func TestRegistryPrune(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()

	w, err := New(nil, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)
	r.Add(w)

	assert.Equal(t, 0, r.Prune(fixedNow()))
	assert.Equal(t, 1, r.Prune(fixedNow().Add(time.Minute)))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryGetDuringPruneOfBusyWizard(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()

	busy, err := New(nil, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)
	other, err := New(nil, f.pkg(t, 2), f.deps, Options{})
	require.NoError(t, err)
	r.Add(busy)
	otherID := r.Add(other)

	// Hold the wizard lock the way a payment in progress does.
	busy.mu.Lock()
	pruned := make(chan int)
	go func() { pruned <- r.Prune(fixedNow()) }()

	got := make(chan *Wizard)
	go func() {
		w, _ := r.Get(otherID)
		got <- w
	}()
	select {
	case w := <-got:
		assert.Same(t, other, w)
	case <-time.After(time.Second):
		busy.mu.Unlock()
		t.Fatal("Get blocked behind Prune")
	}

	busy.mu.Unlock()
	assert.Equal(t, 0, <-pruned)
	assert.Equal(t, 2, r.Len())
}
