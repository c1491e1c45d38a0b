// Package journal keeps an in-process, ordered record of sale events.
package journal

import (
	"sync"

	"github.com/ariefcatur/go-supermarket-chain/internal/market"
)

// DefaultCapacity bounds a journal built with a non-positive capacity.
const DefaultCapacity = 1024

// Journal is a market.EventSink. When full, the oldest envelope is dropped.
type Journal struct {
	mu       sync.Mutex
	capacity int
	events   []market.Envelope
	dropped  int
}

var _ market.EventSink = (*Journal)(nil)

func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{capacity: capacity, events: make([]market.Envelope, 0, capacity)}
}

func (j *Journal) Publish(env market.Envelope) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.events) == j.capacity {
		copy(j.events, j.events[1:])
		j.events = j.events[:len(j.events)-1]
		j.dropped++
	}
	j.events = append(j.events, env)
	return nil
}

// Events returns a copy of the recorded envelopes, oldest first.
func (j *Journal) Events() []market.Envelope {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]market.Envelope(nil), j.events...)
}

// ByType returns the recorded envelopes of one event type, oldest first.
func (j *Journal) ByType(eventType string) []market.Envelope {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []market.Envelope
	for _, e := range j.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.events)
}

// Dropped counts envelopes evicted because the journal was full.
func (j *Journal) Dropped() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dropped
}
