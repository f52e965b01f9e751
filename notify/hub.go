package notify

import "sync"

// Hub fans a payload-free change pulse out to every subscriber. A pulse
// means "re-read everything"; it carries no data, so pending pulses
// coalesce and a subscriber that missed one still converges on the next
// read.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan struct{}]struct{}),
	}
}

// Subscribe registers a new listener. The returned channel has a one-slot
// buffer: an undrained pulse and a fresh one collapse into a single wake-up.
func (h *Hub) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a listener channel. Safe to call for a
// channel that was already unsubscribed.
func (h *Hub) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Broadcast wakes every subscriber without blocking. A subscriber whose
// buffer is already full keeps its pending pulse.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
