package session

import (
	"context"
	"sync"
	"time"
)

// Manager serializes skill requests per user. The platform may deliver two
// utterances from one user at once; their history writes must not interleave.
// Different users run in parallel.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*userLock
	now   func() time.Time
}

type userLock struct {
	mu       sync.Mutex
	lastUsed time.Time
	holders  int
}

func NewManager() *Manager {
	return &Manager{
		locks: make(map[string]*userLock),
		now:   time.Now,
	}
}

// WithLock runs fn while holding the lock of userID and returns fn's error.
func (m *Manager) WithLock(userID string, fn func() error) error {
	m.mu.Lock()
	ul, ok := m.locks[userID]
	if !ok {
		ul = &userLock{}
		m.locks[userID] = ul
	}
	ul.holders++
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		ul.holders--
		ul.lastUsed = m.now()
		m.mu.Unlock()
	}()

	ul.mu.Lock()
	defer ul.mu.Unlock()
	return fn()
}

// Cleanup forgets idle locks not used within maxAge.
func (m *Manager) Cleanup(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, ul := range m.locks {
		if ul.holders == 0 && now.Sub(ul.lastUsed) > maxAge {
			delete(m.locks, id)
		}
	}
}

// Run calls Cleanup every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Cleanup(maxAge)
		}
	}
}

// Len reports how many users currently have a lock entry.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
