package identity

import (
	"sync"
	"time"

	"github.com/adielbeauty/storefront/internal/identity/domain"
)

// Session is the observable "current identity" of one browsing session.
// Only the identity handlers set or clear it; everything else reads.
type Session struct {
	mu        sync.RWMutex
	current   *domain.Identity
	signedOut time.Time
	watchers  []func(*domain.Identity)
}

// NewSession creates an anonymous session
func NewSession() *Session {
	return &Session{}
}

// Current returns a copy of the signed-in identity, nil when anonymous
func (s *Session) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Set signs an identity in and notifies watchers
func (s *Session) Set(id domain.Identity) {
	s.mu.Lock()
	s.current = &id
	watchers := append([]func(*domain.Identity){}, s.watchers...)
	s.mu.Unlock()

	for _, fn := range watchers {
		copied := id
		fn(&copied)
	}
}

// Clear signs out and notifies watchers with nil
func (s *Session) Clear() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	watchers := append([]func(*domain.Identity){}, s.watchers...)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(nil)
	}
}

// SignOut clears the identity and stamps the sign-out time. Bearer tokens
// issued up to that moment no longer sign this session back in.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.signedOut = time.Now()
	s.mu.Unlock()

	s.Clear()
}

// SignedOutAt returns the last sign-out time, zero when never signed out
func (s *Session) SignedOutAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedOut
}

// Watch registers fn to be called on every change
func (s *Session) Watch(fn func(*domain.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}
