package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore maps opaque refresh tokens to usernames. The Redis
// implementation lives in redissvc; this in-memory one serves deployments
// without Redis and the test suites.
type RefreshTokenStore interface {
	Set(token, username string, ttl time.Duration) error
	Get(token string) (string, error)
	Delete(token string) error
}

// NewRefreshToken returns an opaque token value.
func NewRefreshToken() string {
	return uuid.NewString()
}

type memoryRefreshEntry struct {
	username  string
	expiresAt time.Time
}

type MemoryRefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryRefreshEntry
}

func NewMemoryRefreshTokenStore() *MemoryRefreshTokenStore {
	return &MemoryRefreshTokenStore{tokens: map[string]memoryRefreshEntry{}}
}

func (s *MemoryRefreshTokenStore) Set(token, username string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryRefreshEntry{username: username, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryRefreshTokenStore) Get(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", ErrRefreshTokenNotFound
	}
	return entry.username, nil
}

func (s *MemoryRefreshTokenStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// StartCleanupLoop evicts expired tokens periodically.
func (s *MemoryRefreshTokenStore) StartCleanupLoop(interval time.Duration) {
	for {
		time.Sleep(interval)
		s.mu.Lock()
		for token, entry := range s.tokens {
			if time.Now().After(entry.expiresAt) {
				delete(s.tokens, token)
			}
		}
		s.mu.Unlock()
	}
}
