package spectate

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// sendBuffer is how many frames a slow spectator may lag behind before
// frames are dropped for it.
const sendBuffer = 16

// subscriber is one connected spectator.
type subscriber struct {
	send chan []byte
}

// Hub fans frames out to every subscriber. Publish never blocks.
type Hub struct {
	mu      sync.Mutex
	subs    map[*subscriber]struct{}
	last    []byte // Most recent frame, sent to new subscribers
	dropped uint64
	closed  bool
	logger  *log.Logger
}

// NewHub creates an empty hub. A nil logger discards log output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		subs:   make(map[*subscriber]struct{}),
		logger: logger,
	}
}

// Publish encodes f and queues it for every subscriber. Subscribers whose
// buffer is full miss the frame.
func (h *Hub) Publish(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("spectate: marshal frame: %w", err)
	}
	h.broadcast(data)
	return nil
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.last = data
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			h.dropped++
		}
	}
}

// subscribe registers a spectator and primes it with the latest frame.
func (h *Hub) subscribe() (*subscriber, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}
	sub := &subscriber{send: make(chan []byte, sendBuffer)}
	if h.last != nil {
		sub.send <- h.last
	}
	h.subs[sub] = struct{}{}
	h.logger.Debug("spectator joined", "spectators", len(h.subs))
	return sub, true
}

// unsubscribe removes a spectator and closes its queue.
func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.send)
	h.logger.Debug("spectator left", "spectators", len(h.subs))
}

// Subscribers returns the number of connected spectators.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Dropped returns how many frames were skipped for slow spectators.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every spectator. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.send)
	}
}
