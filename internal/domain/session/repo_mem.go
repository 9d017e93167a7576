package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	sess       *Context
	lastAccess time.Time
}

// MemoryStore keeps conversation contexts in process memory and evicts
// them after ttl of inactivity. A background sweeper runs until Close
// is called.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	now      func() time.Time
	done     chan struct{}
	closeOne sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := newMemoryStoreAt(ttl, time.Now)
	go s.sweep(ttl / 2)
	return s
}

func newMemoryStoreAt(ttl time.Duration, now func() time.Time) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		now:      now,
		done:     make(chan struct{}),
	}
}

func (s *MemoryStore) Create(_ context.Context) (*Context, error) {
	sess := newContextAt(uuid.New(), s.now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = &entry{sess: sess, lastAccess: s.now()}
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().Sub(e.lastAccess) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	e.lastAccess = s.now()
	return e.sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

// Close stops the background sweeper. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOne.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.sessions {
		if e.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
