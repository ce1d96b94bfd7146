package service

import (
	"sync"

	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

type AuthEventType string

const (
	AuthLogin  AuthEventType = "login"
	AuthLogout AuthEventType = "logout"
)

// AuthEvent describes one auth-state change.
type AuthEvent struct {
	Type      AuthEventType           `json:"type"`
	SessionID string                  `json:"session_id"`
	Admin     gatewaysdk.AdminProfile `json:"admin,omitempty"`
}

// AuthWatcher fans auth-state changes out to subscribers. Consumers watch
// for changes instead of polling the session endpoint on a timer.
type AuthWatcher struct {
	mu   sync.Mutex
	subs map[int]chan AuthEvent
	next int
}

func NewAuthWatcher() *AuthWatcher {
	return &AuthWatcher{subs: make(map[int]chan AuthEvent)}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away; it closes the channel.
func (w *AuthWatcher) Subscribe() (<-chan AuthEvent, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++

	// Buffered so a slow consumer doesn't stall Notify
	ch := make(chan AuthEvent, 8)
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Notify broadcasts an event. Subscribers with full buffers miss the event
// rather than blocking the sender.
func (w *AuthWatcher) Notify(ev AuthEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
