package realtime

import (
	"sync"
)

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Event tells subscribers that something changed for a wedding. It carries no
// row data: clients are expected to re-fetch the affected collection.
type Event struct {
	WeddingID uint       `json:"wedding_id"`
	Table     string     `json:"table"`
	Kind      ChangeKind `json:"kind"`
}

// Publisher is the side services use to announce changes.
type Publisher interface {
	Publish(evt Event)
}

// Hub is an in-process change feed, one subscription list per wedding.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uint]map[chan Event]struct{}),
	}
}

// Subscribe returns a buffered event channel for the wedding and a cancel
// function that must be called when the subscriber goes away.
func (h *Hub) Subscribe(weddingID uint) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[weddingID] == nil {
		h.subs[weddingID] = make(map[chan Event]struct{})
	}
	h.subs[weddingID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[weddingID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, weddingID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

// Publish fans the event out to current subscribers. Slow subscribers with a
// full buffer are skipped rather than blocked on; they catch up on their next
// re-fetch anyway.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[evt.WeddingID] {
		select {
		case ch <- evt:
		default:
		}
	}
}
