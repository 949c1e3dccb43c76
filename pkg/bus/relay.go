package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// NotifyChannel is the PostgreSQL NOTIFY channel shared by all orchestrator
// pods.
const NotifyChannel = "helmsman_events"

// notifyLimit is PostgreSQL's NOTIFY payload ceiling (8000 bytes) with a
// little headroom. Oversized envelopes are relayed without their payload;
// subscribers that need it replay from the event store by id.
const notifyLimit = 7900

// relayFrame is the wire format carried over NOTIFY. PodID lets each pod
// skip its own broadcasts.
type relayFrame struct {
	PodID     string   `json:"pod_id"`
	Envelope  Envelope `json:"envelope"`
	Truncated bool     `json:"truncated,omitempty"`
}

// Relay mirrors the local bus onto a PostgreSQL NOTIFY channel so that
// every orchestrator pod sees every pod's events. Locally published
// envelopes are broadcast with pg_notify; remote envelopes are injected
// into local fan-out without re-persisting (the originating pod's sink
// already has them).
type Relay struct {
	podID      string
	connString string
	bus        *Bus

	connMu sync.Mutex
	conn   *pgx.Conn

	sub      *Subscription
	cancel   context.CancelFunc
	loopDone chan struct{}
	sendDone chan struct{}
}

// NewRelay creates a relay. connString is a plain pgx DSN; the relay holds
// one dedicated connection for LISTEN.
func NewRelay(podID, connString string, b *Bus) *Relay {
	return &Relay{
		podID:      podID,
		connString: connString,
		bus:        b,
	}
}

// Start connects, LISTENs, and begins relaying in both directions.
func (r *Relay) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, r.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s failed: %w", NotifyChannel, err)
	}

	r.connMu.Lock()
	r.conn = conn
	r.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.loopDone = make(chan struct{})
	r.sendDone = make(chan struct{})

	r.sub = r.bus.Subscribe(Filter{})
	go r.sendLoop(loopCtx)
	go r.receiveLoop(loopCtx)

	slog.Info("Event relay started", "pod_id", r.podID, "channel", NotifyChannel)
	return nil
}

// Stop detaches from the bus, stops both loops, and closes the connection.
func (r *Relay) Stop(ctx context.Context) {
	if r.cancel != nil {
		r.cancel()
	}
	if r.sub != nil {
		r.sub.Unsubscribe()
	}
	if r.sendDone != nil {
		<-r.sendDone
	}
	if r.loopDone != nil {
		<-r.loopDone
	}
	r.connMu.Lock()
	defer r.connMu.Unlock()
	if r.conn != nil {
		_ = r.conn.Close(ctx)
		r.conn = nil
	}
}

// sendLoop broadcasts locally published envelopes. pg_notify goes through
// a second connection owned by this loop; the LISTEN connection is busy in
// WaitForNotification.
func (r *Relay) sendLoop(ctx context.Context) {
	defer close(r.sendDone)

	var conn *pgx.Conn
	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-r.sub.C:
			if !ok {
				return
			}
			payload, err := encodeFrame(r.podID, e)
			if err != nil {
				slog.Warn("Failed to encode relay frame", "event_id", e.ID, "error", err)
				continue
			}
			if conn == nil {
				conn, err = pgx.Connect(ctx, r.connString)
				if err != nil {
					slog.Warn("Relay send connect failed, dropping event", "event_id", e.ID, "error", err)
					continue
				}
			}
			if _, err := conn.Exec(ctx, "SELECT pg_notify($1, $2)", NotifyChannel, payload); err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("pg_notify failed", "event_id", e.ID, "error", err)
				_ = conn.Close(ctx)
				conn = nil
			}
		}
	}
}

// receiveLoop is the sole user of the LISTEN connection. On connection
// errors it reconnects with capped exponential backoff.
func (r *Relay) receiveLoop(ctx context.Context) {
	defer close(r.loopDone)
	for {
		r.connMu.Lock()
		conn := r.conn
		r.connMu.Unlock()

		if conn == nil {
			if !r.reconnect(ctx) {
				return
			}
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("NOTIFY receive error", "error", err)
			r.connMu.Lock()
			_ = r.conn.Close(ctx)
			r.conn = nil
			r.connMu.Unlock()
			continue
		}

		r.handleNotification([]byte(notification.Payload))
	}
}

// handleNotification decodes one frame and injects foreign events into the
// local fan-out.
func (r *Relay) handleNotification(payload []byte) {
	frame, err := decodeFrame(payload)
	if err != nil {
		slog.Warn("Dropping malformed relay frame", "error", err)
		return
	}
	if frame.PodID == r.podID {
		return
	}
	r.bus.Inject(frame.Envelope)
}

// reconnect re-establishes the LISTEN connection, returning false when the
// context is done.
func (r *Relay) reconnect(ctx context.Context) bool {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, r.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		r.connMu.Lock()
		r.conn = conn
		r.connMu.Unlock()
		slog.Info("Event relay reconnected")
		return true
	}
}

// encodeFrame serializes an envelope for NOTIFY. Envelopes over the NOTIFY
// payload limit are sent without their payload map and marked truncated.
func encodeFrame(podID string, e Envelope) (string, error) {
	data, err := json.Marshal(relayFrame{PodID: podID, Envelope: e})
	if err != nil {
		return "", fmt.Errorf("failed to marshal relay frame: %w", err)
	}
	if len(data) <= notifyLimit {
		return string(data), nil
	}

	stub := e
	stub.Payload = nil
	data, err = json.Marshal(relayFrame{PodID: podID, Envelope: stub, Truncated: true})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated relay frame: %w", err)
	}
	return string(data), nil
}

// decodeFrame parses a NOTIFY payload back into a frame.
func decodeFrame(payload []byte) (relayFrame, error) {
	var frame relayFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return frame, fmt.Errorf("failed to unmarshal relay frame: %w", err)
	}
	if frame.Envelope.ID == "" {
		return frame, fmt.Errorf("relay frame missing envelope id")
	}
	return frame, nil
}
