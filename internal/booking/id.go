package booking

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator issues "BK<unix millis>" ids. Two bookings created within the
// same millisecond get consecutive values.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return "BK" + strconv.FormatInt(ms, 10)
}
