package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// MessagePoller long-polls the orchestrator for injected messages and
// buffers them for delivery between agent turns. Delivery to the buffer is
// at-least-once; the poller deduplicates by message id and tracks two
// cursors: fetched (what it has seen) and acked (what the runtime confirmed
// delivered to the agent).
type MessagePoller struct {
	client    *CallbackClient
	sandboxID string
	interval  time.Duration

	mu      sync.Mutex
	pending []models.InjectedMessage
	seen    map[string]bool
	fetched int64
	acked   int64

	// interrupted flips when an interrupt message is fetched, so the turn
	// pump can signal the agent at the next safe suspension point without
	// waiting for the between-turns drain.
	interrupted bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewMessagePoller creates a poller starting at the given acked cursor.
func NewMessagePoller(client *CallbackClient, sandboxID string, startCursor int64, interval time.Duration) *MessagePoller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &MessagePoller{
		client:    client,
		sandboxID: sandboxID,
		interval:  interval,
		seen:      make(map[string]bool),
		fetched:   startCursor,
		acked:     startCursor,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the background long-poll loop.
func (p *MessagePoller) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop terminates the poll loop and waits for it.
func (p *MessagePoller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *MessagePoller) run(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if err := p.pollOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Warn("Message poll failed", "sandbox_id", p.sandboxID, "error", err)
			select {
			case <-p.stopCh:
				return
			case <-ctx.Done():
				return
			case <-time.After(p.interval):
			}
		}
	}
}

// pollOnce issues one long-poll and buffers new messages.
func (p *MessagePoller) pollOnce(ctx context.Context) error {
	p.mu.Lock()
	cursor := p.fetched
	p.mu.Unlock()

	resp, err := p.client.PollMessages(ctx, p.sandboxID, cursor, p.interval)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, msg := range resp.Messages {
		if p.seen[msg.ID] {
			continue
		}
		p.seen[msg.ID] = true
		p.pending = append(p.pending, msg)
		if msg.Type == models.MessageTypeInterrupt {
			p.interrupted = true
		}
	}
	if resp.NextCursor > p.fetched {
		p.fetched = resp.NextCursor
	}
	return nil
}

// Drain returns the buffered messages in order and the cursor to acknowledge
// once they are delivered. Called by the runtime between agent turns.
func (p *MessagePoller) Drain() ([]models.InjectedMessage, int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := p.pending
	p.pending = nil
	p.interrupted = false
	return msgs, p.fetched
}

// Ack acknowledges delivery up to cursor. The server marks messages with
// id ≤ cursor as delivered; a worker crash before Ack makes them eligible
// for redelivery, which the seen-set absorbs.
func (p *MessagePoller) Ack(ctx context.Context, cursor int64) error {
	p.mu.Lock()
	if cursor <= p.acked {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	// Acknowledgement rides the poll endpoint: polling from cursor acks
	// everything at or below it.
	if _, err := p.client.PollMessages(ctx, p.sandboxID, cursor, 0); err != nil {
		return err
	}

	p.mu.Lock()
	p.acked = cursor
	p.mu.Unlock()
	return nil
}

// Interrupted reports whether an interrupt arrived since the last Drain.
// Checked by the turn pump at safe suspension points mid-turn.
func (p *MessagePoller) Interrupted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interrupted
}

// PendingCount returns the number of buffered undelivered messages.
func (p *MessagePoller) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}
