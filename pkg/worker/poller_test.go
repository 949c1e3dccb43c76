package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// messageServer emulates the orchestrator's message queue: cursor-ordered
// messages, redelivery of everything above the polled cursor.
type messageServer struct {
	mu       sync.Mutex
	messages []models.InjectedMessage
	acked    int64
}

func (s *messageServer) queue(msg models.InjectedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.Cursor = int64(len(s.messages) + 1)
	if msg.ID == "" {
		msg.ID = "msg-" + strconv.FormatInt(msg.Cursor, 10)
	}
	s.messages = append(s.messages, msg)
}

func (s *messageServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, _ := strconv.ParseInt(r.URL.Query().Get("cursor"), 10, 64)

		s.mu.Lock()
		if cursor > s.acked {
			s.acked = cursor
		}
		resp := models.MessagePollResponse{NextCursor: cursor}
		for _, msg := range s.messages {
			if msg.Cursor > cursor {
				resp.Messages = append(resp.Messages, msg)
				resp.NextCursor = msg.Cursor
			}
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func newTestPoller(t *testing.T) (*MessagePoller, *messageServer) {
	t.Helper()
	server := &messageServer{}
	srv := httptest.NewServer(server.handler())
	t.Cleanup(srv.Close)

	client := NewCallbackClient(srv.URL, "key", 5*time.Second)
	return NewMessagePoller(client, "sbx-1", 0, 10*time.Millisecond), server
}

func TestPollerFetchesInOrder(t *testing.T) {
	poller, server := newTestPoller(t)
	server.queue(models.InjectedMessage{Type: models.MessageTypeUser, Content: "first"})
	server.queue(models.InjectedMessage{Type: models.MessageTypeSystem, Content: "second"})

	require.NoError(t, poller.pollOnce(context.Background()))

	msgs, cursor := poller.Drain()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, int64(2), cursor)
}

func TestPollerDeduplicatesRedelivery(t *testing.T) {
	poller, server := newTestPoller(t)
	server.queue(models.InjectedMessage{ID: "msg-a", Type: models.MessageTypeUser, Content: "hi"})

	// Two polls without an ack in between redeliver msg-a.
	require.NoError(t, poller.pollOnce(context.Background()))

	poller.mu.Lock()
	poller.fetched = 0 // simulate a fetch-cursor reset, as after a crash
	poller.mu.Unlock()
	require.NoError(t, poller.pollOnce(context.Background()))

	msgs, _ := poller.Drain()
	assert.Len(t, msgs, 1, "seen-set absorbs at-least-once redelivery")
}

func TestPollerInterruptFlag(t *testing.T) {
	poller, server := newTestPoller(t)
	server.queue(models.InjectedMessage{Type: models.MessageTypeInterrupt, Content: "stop", Cancel: true})

	require.NoError(t, poller.pollOnce(context.Background()))
	assert.True(t, poller.Interrupted())

	msgs, _ := poller.Drain()
	require.Len(t, msgs, 1)
	assert.False(t, poller.Interrupted(), "drain clears the flag")
}

func TestPollerAckAdvancesServerCursor(t *testing.T) {
	poller, server := newTestPoller(t)
	server.queue(models.InjectedMessage{Type: models.MessageTypeUser, Content: "one"})

	require.NoError(t, poller.pollOnce(context.Background()))
	msgs, cursor := poller.Drain()
	require.Len(t, msgs, 1)

	require.NoError(t, poller.Ack(context.Background(), cursor))

	server.mu.Lock()
	acked := server.acked
	server.mu.Unlock()
	assert.Equal(t, int64(1), acked)

	// Re-acking the same cursor is a no-op.
	require.NoError(t, poller.Ack(context.Background(), cursor))
}

func TestPollerBackgroundLoop(t *testing.T) {
	poller, server := newTestPoller(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)
	defer poller.Stop()

	server.queue(models.InjectedMessage{Type: models.MessageTypeUser, Content: "bg"})

	require.Eventually(t, func() bool {
		return poller.PendingCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}
