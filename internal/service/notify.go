package service

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Level distinguishes success from error notifications.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient user-feedback message.
type Notification struct {
	Level Level
	Text  string
	Seq   uint64 // increases with every Publish; lets the UI ignore stale expiry timers
}

// Notifier is the single-slot notification channel: a new notification
// replaces any currently displayed one, and each expires after a fixed TTL
// with no further action required.
type Notifier struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	ttl       time.Duration
	current   *Notification
	expiresAt time.Time
	seq       uint64
}

// NewNotifier returns a notifier whose notifications live for ttl.
func NewNotifier(clock clockwork.Clock, ttl time.Duration) *Notifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Notifier{clock: clock, ttl: ttl}
}

// Publish replaces the active notification.
func (n *Notifier) Publish(level Level, text string) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	note := Notification{Level: level, Text: text, Seq: n.seq}
	n.current = &note
	n.expiresAt = n.clock.Now().Add(n.ttl)
	return note
}

// Success publishes a success notification.
func (n *Notifier) Success(text string) Notification {
	return n.Publish(LevelSuccess, text)
}

// Error publishes an error notification.
func (n *Notifier) Error(text string) Notification {
	return n.Publish(LevelError, text)
}

// Current returns the active notification, or false if none is active or
// the active one has expired.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil || !n.clock.Now().Before(n.expiresAt) {
		return Notification{}, false
	}
	return *n.current, true
}

// TTL returns the display duration, used by the UI to schedule a redraw
// when the active notification expires.
func (n *Notifier) TTL() time.Duration {
	return n.ttl
}
