// Package session keys the shopping state to a visitor. One Session holds
// the cart, compare set and wishlist for the lifetime of a browsing
// session; nothing is persisted across sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/motohub/moto-catalog/internal/store"
)

// Session is the per-visitor state bundle. The managers are constructed
// once when the session is created and only ever mutated through their own
// methods.
type Session struct {
	ID       string
	Cart     *store.Cart
	Compare  *store.Compare
	Wishlist *store.Wishlist

	lastSeen time.Time
}

// Manager creates and expires sessions. Lookups refresh the last-seen
// time; idle sessions are dropped by the cleanup loop.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	discount store.DiscountRule
}

func NewManager(ttl time.Duration, discount store.DiscountRule) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		discount: discount,
	}
}

// Get returns the session for the id, creating a fresh one when the id is
// empty or unknown. Unknown ids get a new id rather than resurrecting
// expired state.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.lastSeen = time.Now()
			return s
		}
	}

	s := &Session{
		ID:       uuid.NewString(),
		Cart:     store.NewCart(m.discount),
		Compare:  store.NewCompare(),
		Wishlist: store.NewWishlist(),
		lastSeen: time.Now(),
	}
	m.sessions[s.ID] = s
	return s
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartCleanupLoop drops sessions idle for longer than the TTL. Runs
// forever; start it in a goroutine.
func (m *Manager) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		m.Cleanup()
	}
}

// Cleanup removes every session past its TTL.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if time.Since(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
