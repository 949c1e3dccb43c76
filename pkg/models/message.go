package models

import "time"

// InjectedMessageType enumerates the kinds of messages queued for delivery
// into a running sandbox between agent turns.
type InjectedMessageType string

// Injected message types.
const (
	MessageTypeUser          InjectedMessageType = "user_message"
	MessageTypeInterrupt     InjectedMessageType = "interrupt"
	MessageTypeGuardianNudge InjectedMessageType = "guardian_nudge"
	MessageTypeSystem        InjectedMessageType = "system"
)

// InjectedMessage is one message queued for a sandbox. Delivery is
// at-least-once and in cursor order; workers deduplicate by ID and apply
// messages only between agent turns.
type InjectedMessage struct {
	ID        string              `json:"id"`
	SandboxID string              `json:"sandbox_id"`
	Type      InjectedMessageType `json:"type"`
	Content   string              `json:"content"`
	Cancel    bool                `json:"cancel,omitempty"`
	Cursor    int64               `json:"cursor"`
	CreatedAt time.Time           `json:"created_at"`
}

// MessagePollResponse is the long-poll response of
// GET /sandbox/{sandbox_id}/messages?cursor=. Messages are strictly after
// the supplied cursor; NextCursor is acknowledged by the worker only after
// every message has been delivered to the agent.
type MessagePollResponse struct {
	Messages   []InjectedMessage `json:"messages"`
	NextCursor int64             `json:"next_cursor"`
}

// QueueMessageRequest is the producer-side body of
// POST /sandbox/{sandbox_id}/messages.
type QueueMessageRequest struct {
	Type    InjectedMessageType `json:"type"`
	Content string              `json:"content"`
	Cancel  bool                `json:"cancel,omitempty"`
}
