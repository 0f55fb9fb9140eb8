package sse

import (
	"sync"
)

// ProgressEvent is one generation progress update pushed to a user's open
// SSE streams while their project is being synthesized and enriched.
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Stage   string `json:"stage"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// Hub manages SSE subscribers and progress broadcasting per user.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan ProgressEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan ProgressEvent]struct{}),
	}
}

// Subscribe registers a new subscriber for a user and returns the event
// channel and a cleanup function.
func (h *Hub) Subscribe(userID string) (chan ProgressEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan ProgressEvent, 10)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan ProgressEvent]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Publish sends a progress event to all of the user's subscribers. Slow
// subscribers are skipped rather than blocking generation.
func (h *Hub) Publish(userID string, event ProgressEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}
