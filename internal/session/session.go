// Package session carries the signed-in identity explicitly instead of
// through process globals.
package session

import (
	"sync"

	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

// Identity is what the rest of the system knows about the signed-in user.
type Identity struct {
	UserID          string
	Email           string
	Role            user.Role
	TravelFrequency string
}

func (i Identity) IsGuest() bool {
	return i.Role == user.RoleGuest
}

// IdentityOf projects a stored user onto an Identity.
func IdentityOf(u *user.User) Identity {
	id := Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
	if u.TravelFrequency != nil {
		id.TravelFrequency = *u.TravelFrequency
	}
	return id
}

// Session holds at most one identity. It is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	identity *Identity
}

// New returns an anonymous session.
func New() *Session {
	return &Session{}
}

// FromUser returns a session already signed in as u.
func FromUser(u *user.User) *Session {
	s := New()
	s.Login(IdentityOf(u))
	return s
}

func (s *Session) Login(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &id
}

// Identity returns the signed-in identity, if any.
func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}
