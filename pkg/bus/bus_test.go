package bus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink records persisted envelopes for assertions.
type memorySink struct {
	mu     sync.Mutex
	events []Envelope
	err    error
}

func (s *memorySink) Persist(_ context.Context, e Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *memorySink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func collect(t *testing.T, sub *Subscription, n int) []Envelope {
	t.Helper()
	out := make([]Envelope, 0, n)
	deadline := time.After(2 * time.Second)
	for len(out) < n {
		select {
		case e, ok := <-sub.C:
			if !ok {
				t.Fatalf("subscription closed after %d events, wanted %d", len(out), n)
			}
			out = append(out, e)
		case <-deadline:
			t.Fatalf("timed out after %d events, wanted %d", len(out), n)
		}
	}
	return out
}

func TestBus_PersistsBeforeFanOut(t *testing.T) {
	sink := &memorySink{}
	b := New(sink, 8)
	defer b.Stop()

	err := b.Publish(context.Background(), Envelope{
		EventType:  "task.status",
		EntityType: "task",
		EntityID:   "task-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sink.count(), "sink must be written before Publish returns")
}

func TestBus_SinkFailureSurfacesToPublisher(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	b := New(sink, 8)
	defer b.Stop()

	err := b.Publish(context.Background(), Envelope{EventType: "task.status"})
	require.Error(t, err)
}

func TestBus_PerEntityFIFO(t *testing.T) {
	b := New(nil, 64)
	defer b.Stop()

	sub := b.Subscribe(Filter{EntityType: "task", EntityID: "task-1"})
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		require.NoError(t, b.Publish(ctx, Envelope{
			EventType:  "task.status",
			EntityType: "task",
			EntityID:   "task-1",
			Payload:    map[string]interface{}{"i": i},
		}))
	}

	got := collect(t, sub, 20)
	for i, e := range got {
		assert.Equal(t, i, e.Payload["i"], "subscriber order must match publish order")
	}
}

func TestBus_FilterMatching(t *testing.T) {
	b := New(nil, 8)
	defer b.Stop()

	taskSub := b.Subscribe(Filter{EntityType: "task"})
	agentSub := b.Subscribe(Filter{EntityType: "agent"})
	allSub := b.Subscribe(Filter{})

	ctx := context.Background()
	require.NoError(t, b.Publish(ctx, Envelope{EventType: "task.status", EntityType: "task", EntityID: "t1"}))
	require.NoError(t, b.Publish(ctx, Envelope{EventType: "agent.status", EntityType: "agent", EntityID: "a1"}))

	assert.Equal(t, "task", collect(t, taskSub, 1)[0].EntityType)
	assert.Equal(t, "agent", collect(t, agentSub, 1)[0].EntityType)
	assert.Len(t, collect(t, allSub, 2), 2)

	// No extra delivery for the filtered subscribers.
	select {
	case e := <-taskSub.C:
		t.Fatalf("unexpected delivery: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_SlowSubscriberIsDisconnected(t *testing.T) {
	b := New(nil, 2)
	defer b.Stop()

	slow := b.Subscribe(Filter{})
	ctx := context.Background()

	// Never read from slow; overflow its queue of 2.
	for i := 0; i < 10; i++ {
		require.NoError(t, b.Publish(ctx, Envelope{EventType: "task.status", EntityID: "t"}))
	}

	// The channel must eventually be closed by the disconnect.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-slow.C:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("slow subscriber was never disconnected")
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New(nil, 8)
	defer b.Stop()

	sub := b.Subscribe(Filter{})
	sub.Unsubscribe()
	_, ok := <-sub.C
	assert.False(t, ok, "channel must be closed after Unsubscribe")
}

func TestBus_StampsIDAndTimestamp(t *testing.T) {
	sink := &memorySink{}
	b := New(sink, 8)
	defer b.Stop()

	require.NoError(t, b.Publish(context.Background(), Envelope{EventType: "x"}))
	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.events, 1)
	assert.NotEmpty(t, sink.events[0].ID)
	assert.False(t, sink.events[0].At.IsZero())
}
