// Package flowstate keeps pending OAuth flows between the redirect out and
// the provider callback. Entries are single use and expire on a fixed TTL.
package flowstate

import (
	"context"
	"sync"
	"time"

	"cliphub/internal/domain/service"
)

const sweepInterval = time.Minute

type entry struct {
	state     service.FlowState
	expiresAt time.Time
}

// MemoryStore is an in-process FlowStore. Flows are short-lived and losing
// them on restart only forces the user to click connect again, so process
// memory is an acceptable home for them.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	done    chan struct{}
	stopped chan struct{}
}

// NewMemoryStore builds the store and starts the expiry sweeper.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]entry),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.sweep()

	return s
}

// Put stores a pending flow under key for at most ttl.
func (s *MemoryStore) Put(_ context.Context, key string, state service.FlowState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		state:     state,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Take removes and returns the flow stored under key. A second Take with the
// same key misses, which is what makes the state parameter single use.
func (s *MemoryStore) Take(_ context.Context, key string) (*service.FlowState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	delete(s.entries, key)

	if time.Now().After(e.expiresAt) {
		return nil, false
	}

	state := e.state

	return &state, true
}

// Close stops the expiry sweeper and waits for it to exit.
func (s *MemoryStore) Close() {
	close(s.done)
	<-s.stopped
}

func (s *MemoryStore) sweep() {
	defer close(s.stopped)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
