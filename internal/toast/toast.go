// Package toast keeps the admin console's transient notifications.
// Each toast lives for a fixed TTL and then drops out of the active
// set on its own; the console can also dismiss one early.
package toast

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL is how long a toast stays visible before it dismisses
// itself.
const DefaultTTL = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Toast struct {
	ID        string
	Kind      Kind
	Message   string
	ExpiresAt time.Time
}

// Manager holds the active toasts for one console session. Expired
// toasts are pruned lazily on read, so no background timer is needed
// and tests can drive the clock directly.
type Manager struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []Toast
	now    func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{ttl: ttl, now: time.Now}
}

// Push adds a toast and returns its id.
func (m *Manager) Push(kind Kind, message string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.prune(now)
	t := Toast{
		ID:        ulid.Make().String(),
		Kind:      kind,
		Message:   message,
		ExpiresAt: now.Add(m.ttl),
	}
	m.toasts = append(m.toasts, t)
	return t.ID
}

// Dismiss removes a toast before its TTL runs out. Unknown ids are a
// no-op.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts still within their TTL, oldest first.
func (m *Manager) Active() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune(m.now())
	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

func (m *Manager) prune(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.ExpiresAt.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}
