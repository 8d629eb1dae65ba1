// Package notify holds the transient, auto-expiring notifications the
// application surfaces for every error class. Nothing here is fatal and
// nothing is persisted.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// DefaultTTL is how long a notification stays active before expiring.
const DefaultTTL = 6 * time.Second

// Notification is a single transient message.
type Notification struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Notifier collects notifications and prunes expired ones on read.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries []Notification
}

// New creates a Notifier with the default TTL.
func New() *Notifier {
	return &Notifier{ttl: DefaultTTL, now: time.Now}
}

// Push adds a notification and returns its id.
func (n *Notifier) Push(level Level, message string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	entry := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}
	n.entries = append(n.entries, entry)
	return entry.ID
}

// Info pushes an informational notification.
func (n *Notifier) Info(message string) string { return n.Push(LevelInfo, message) }

// Success pushes a success notification.
func (n *Notifier) Success(message string) string { return n.Push(LevelSuccess, message) }

// Error pushes an error notification.
func (n *Notifier) Error(message string) string { return n.Push(LevelError, message) }

// Active returns all notifications that have not yet expired, pruning
// the rest.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	kept := n.entries[:0]
	for _, entry := range n.entries {
		if entry.ExpiresAt.After(now) {
			kept = append(kept, entry)
		}
	}
	n.entries = kept
	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes a notification by id before its TTL elapses.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, entry := range n.entries {
		if entry.ID == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}
