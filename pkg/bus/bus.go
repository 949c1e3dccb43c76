// Package bus provides the in-process event bus connecting the orchestrator
// components: publish/subscribe over a typed envelope with durable fan-out
// to a persistence sink and a live subscriber set.
//
// Ordering: events are dispatched by a single goroutine, so the observed
// order per (entity_type, entity_id) matches publish order. Cross-entity
// ordering is not guaranteed.
//
// Backpressure: each subscriber has a bounded queue. A slow subscriber that
// overflows is disconnected and logged; it never blocks publishers. The sink
// persists each event before the publish call returns, so replay from the
// store is authoritative.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Envelope is the typed event wrapper carried on the bus.
type Envelope struct {
	ID         string                 `json:"id"`
	EventType  string                 `json:"event_type"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	At         time.Time              `json:"at"`
}

// Filter selects which envelopes a subscriber receives. Zero-valued fields
// match everything.
type Filter struct {
	EventType  string
	EntityType string
	EntityID   string
}

// Matches reports whether the envelope passes the filter.
func (f Filter) Matches(e Envelope) bool {
	if f.EventType != "" && f.EventType != e.EventType {
		return false
	}
	if f.EntityType != "" && f.EntityType != e.EntityType {
		return false
	}
	if f.EntityID != "" && f.EntityID != e.EntityID {
		return false
	}
	return true
}

// Sink persists every published envelope before fan-out acks. Implemented
// by services.EventService.
type Sink interface {
	Persist(ctx context.Context, e Envelope) error
}

// Subscription is a live subscriber handle. Events arrive on C until
// Unsubscribe is called or the subscriber is disconnected for overflow.
type Subscription struct {
	ID     string
	C      <-chan Envelope
	filter Filter
	ch     chan Envelope
	bus    *Bus
}

// Unsubscribe detaches the subscription and closes its channel.
func (s *Subscription) Unsubscribe() {
	s.bus.remove(s.ID)
}

// Bus is the in-process event bus.
type Bus struct {
	sink      Sink
	queueSize int

	mu   sync.Mutex
	subs map[string]*Subscription

	dispatchCh chan Envelope
	stopOnce   sync.Once
	stopCh     chan struct{}
	doneCh     chan struct{}
}

// New creates a bus with the given persistence sink and per-subscriber
// queue size. sink may be nil (fan-out only, used by the sandbox worker's
// local bus and by tests).
func New(sink Sink, queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = 64
	}
	b := &Bus{
		sink:       sink,
		queueSize:  queueSize,
		subs:       make(map[string]*Subscription),
		dispatchCh: make(chan Envelope, queueSize),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
	go b.dispatchLoop()
	return b
}

// Publish persists the envelope through the sink, then queues it for
// fan-out. An envelope without an ID or timestamp is stamped here.
func (b *Bus) Publish(ctx context.Context, e Envelope) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	if b.sink != nil {
		if err := b.sink.Persist(ctx, e); err != nil {
			return fmt.Errorf("failed to persist event %s: %w", e.ID, err)
		}
	}
	select {
	case b.dispatchCh <- e:
		return nil
	case <-b.stopCh:
		return fmt.Errorf("bus stopped, dropping event %s", e.ID)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inject queues an envelope for local fan-out without persisting it.
// Used by the cross-pod relay: the originating pod already persisted the
// event through its own sink.
func (b *Bus) Inject(e Envelope) {
	select {
	case b.dispatchCh <- e:
	case <-b.stopCh:
	}
}

// Subscribe registers a live subscriber with the given filter.
func (b *Bus) Subscribe(filter Filter) *Subscription {
	ch := make(chan Envelope, b.queueSize)
	sub := &Subscription{
		ID:     uuid.New().String(),
		C:      ch,
		ch:     ch,
		filter: filter,
		bus:    b,
	}
	b.mu.Lock()
	b.subs[sub.ID] = sub
	b.mu.Unlock()
	return sub
}

// Stop shuts the dispatch loop down and closes all subscriber channels.
// Already-queued events are delivered first.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		<-b.doneCh
		b.mu.Lock()
		defer b.mu.Unlock()
		for id, sub := range b.subs {
			close(sub.ch)
			delete(b.subs, id)
		}
	})
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		close(sub.ch)
		delete(b.subs, id)
	}
}

// dispatchLoop is the single goroutine that fans events out to subscribers,
// preserving publish order per entity.
func (b *Bus) dispatchLoop() {
	defer close(b.doneCh)
	for {
		select {
		case e := <-b.dispatchCh:
			b.fanOut(e)
		case <-b.stopCh:
			// Drain whatever was queued before stop.
			for {
				select {
				case e := <-b.dispatchCh:
					b.fanOut(e)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) fanOut(e Envelope) {
	b.mu.Lock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.filter.Matches(e) {
			matched = append(matched, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range matched {
		select {
		case sub.ch <- e:
		default:
			// Bounded queue is full: disconnect the slow subscriber rather
			// than block the dispatch loop.
			slog.Warn("Disconnecting slow event subscriber",
				"subscription_id", sub.ID,
				"event_type", e.EventType,
				"entity_id", e.EntityID)
			b.remove(sub.ID)
		}
	}
}
