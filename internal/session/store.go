// Package session provides the per-session conversation context store.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jumpstart/style-assistant/internal/domain"
)

// Store manages conversation contexts keyed by opaque session id.
type Store interface {
	// Get returns the context for a session, creating it on first reference.
	Get(sessionID string) *domain.Context

	// Peek returns the context for a session, or nil if none exists. It
	// never creates state.
	Peek(sessionID string) *domain.Context

	// Evict removes a session's context.
	Evict(sessionID string)

	// Len returns the number of live contexts.
	Len() int

	// Close stops background maintenance.
	Close()
}

const minSweepInterval = 30 * time.Second

// MemoryStore is an in-process Store with TTL- and capacity-bounded
// eviction. The original system kept contexts forever; the bounds here keep
// the map from growing without limit.
type MemoryStore struct {
	mu       sync.Mutex
	contexts map[string]*domain.Context
	ttl      time.Duration
	capacity int
	done     chan struct{}
	closeOne sync.Once
}

// NewMemoryStore creates a memory store and starts the eviction janitor.
// A zero ttl disables time-based eviction; a zero capacity disables the
// size bound.
func NewMemoryStore(ttl time.Duration, capacity int) *MemoryStore {
	s := &MemoryStore{
		contexts: make(map[string]*domain.Context),
		ttl:      ttl,
		capacity: capacity,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Get returns the context for a session, creating it lazily.
func (s *MemoryStore) Get(sessionID string) *domain.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.contexts[sessionID]; ok {
		conv.LastSeenAt = time.Now()
		return conv
	}

	if s.capacity > 0 && len(s.contexts) >= s.capacity {
		s.evictOldestLocked()
	}

	conv := domain.NewContext(sessionID)
	s.contexts[sessionID] = conv
	return conv
}

// Peek returns the context for a session without creating one.
func (s *MemoryStore) Peek(sessionID string) *domain.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contexts[sessionID]
}

// Evict removes a session's context.
func (s *MemoryStore) Evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, sessionID)
}

// Len returns the number of live contexts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}

// Close stops the eviction janitor.
func (s *MemoryStore) Close() {
	s.closeOne.Do(func() { close(s.done) })
}

// evictOldestLocked drops the least recently seen context. Caller holds mu.
func (s *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestSeen time.Time
	for id, conv := range s.contexts {
		if oldestID == "" || conv.LastSeenAt.Before(oldestSeen) {
			oldestID = id
			oldestSeen = conv.LastSeenAt
		}
	}
	if oldestID != "" {
		delete(s.contexts, oldestID)
		slog.Debug("session store evicted oldest context", "session_id", oldestID)
	}
}

// janitor periodically sweeps for contexts idle past the TTL.
func (s *MemoryStore) janitor() {
	interval := s.ttl / 4
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if swept := s.sweep(); swept > 0 {
				slog.Info("session store swept idle contexts", "count", swept)
			}
		case <-s.done:
			return
		}
	}
}

// sweep removes contexts idle past the TTL and returns how many were removed.
func (s *MemoryStore) sweep() int {
	threshold := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, conv := range s.contexts {
		if conv.LastSeenAt.Before(threshold) {
			delete(s.contexts, id)
			swept++
		}
	}
	return swept
}
