package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ConnectionManager bridges the in-process bus to WebSocket clients
// (dashboards, operator tooling). Each client sends subscribe/unsubscribe
// control messages and receives matching envelopes as JSON.
type ConnectionManager struct {
	bus          *Bus
	writeTimeout time.Duration

	mu          sync.RWMutex
	connections map[string]*wsConnection
}

type wsConnection struct {
	id     string
	conn   *websocket.Conn
	cancel context.CancelFunc

	// Subscriptions keyed by the client-chosen subscription id. Accessed
	// only from the connection's read loop goroutine.
	subs map[string]*Subscription
}

// clientMessage is a control frame from the client.
type clientMessage struct {
	Action         string `json:"action"` // subscribe | unsubscribe
	SubscriptionID string `json:"subscription_id"`
	EventType      string `json:"event_type,omitempty"`
	EntityType     string `json:"entity_type,omitempty"`
	EntityID       string `json:"entity_id,omitempty"`
}

// NewConnectionManager creates a WebSocket bridge over the bus.
func NewConnectionManager(b *Bus, writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &ConnectionManager{
		bus:          b,
		writeTimeout: writeTimeout,
		connections:  make(map[string]*wsConnection),
	}
}

// HandleConnection owns the lifecycle of one WebSocket client. Blocks until
// the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsConnection{
		id:     uuid.New().String(),
		conn:   conn,
		cancel: cancel,
		subs:   make(map[string]*Subscription),
	}

	m.mu.Lock()
	m.connections[c.id] = c
	m.mu.Unlock()

	defer func() {
		for _, sub := range c.subs {
			sub.Unsubscribe()
		}
		cancel()
		m.mu.Lock()
		delete(m.connections, c.id)
		m.mu.Unlock()
	}()

	m.sendJSON(ctx, c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Ignoring malformed WebSocket control frame", "connection_id", c.id, "error", err)
			continue
		}
		switch msg.Action {
		case "subscribe":
			m.subscribe(ctx, c, msg)
		case "unsubscribe":
			if sub, ok := c.subs[msg.SubscriptionID]; ok {
				sub.Unsubscribe()
				delete(c.subs, msg.SubscriptionID)
			}
		default:
			slog.Warn("Unknown WebSocket action", "connection_id", c.id, "action", msg.Action)
		}
	}
}

func (m *ConnectionManager) subscribe(ctx context.Context, c *wsConnection, msg clientMessage) {
	if msg.SubscriptionID == "" {
		msg.SubscriptionID = uuid.New().String()
	}
	if _, exists := c.subs[msg.SubscriptionID]; exists {
		return
	}
	sub := m.bus.Subscribe(Filter{
		EventType:  msg.EventType,
		EntityType: msg.EntityType,
		EntityID:   msg.EntityID,
	})
	c.subs[msg.SubscriptionID] = sub

	go func() {
		for e := range sub.C {
			m.sendJSON(ctx, c, map[string]interface{}{
				"type":            "event",
				"subscription_id": msg.SubscriptionID,
				"event":           e,
			})
		}
	}()

	m.sendJSON(ctx, c, map[string]string{
		"type":            "subscription.confirmed",
		"subscription_id": msg.SubscriptionID,
	})
}

func (m *ConnectionManager) sendJSON(ctx context.Context, c *wsConnection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal WebSocket payload", "error", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, m.writeTimeout)
	defer cancel()
	if err := c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		// Write failure tears the connection down; the read loop exits next.
		c.cancel()
	}
}
