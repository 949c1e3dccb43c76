// Package session holds the conversation transcript the sandbox worker
// maintains across agent turns, including base64 serialization for
// checkpoint/resume.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MessageRole represents the role of a message sender
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// Message represents a single conversation message
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	ToolName  string      `json:"tool_name,omitempty"`
	ToolUseID string      `json:"tool_use_id,omitempty"`
}

// SessionStatus represents the current state of a session
type SessionStatus string

const (
	StatusPending    SessionStatus = "pending"
	StatusProcessing SessionStatus = "processing"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
	StatusCancelled  SessionStatus = "cancelled"
	StatusTimedOut   SessionStatus = "timed_out"
)

// Session represents one agent conversation inside a sandbox.
type Session struct {
	ID         string             `json:"id"`
	Messages   []Message          `json:"messages"`
	Status     SessionStatus      `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Error      string             `json:"error,omitempty"`
	mu         sync.RWMutex       // Protects concurrent access to session fields
	cancelFunc context.CancelFunc `json:"-"` // Function to cancel processing
}

// AddMessage adds a message to the session (thread-safe)
func (s *Session) AddMessage(role MessageRole, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, Message{
		Role:    role,
		Content: content,
	})
	s.UpdatedAt = time.Now()
}

// AddToolResult appends a tool result message bound to a tool invocation.
func (s *Session) AddToolResult(toolName, toolUseID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, Message{
		Role:      RoleTool,
		Content:   content,
		ToolName:  toolName,
		ToolUseID: toolUseID,
	})
	s.UpdatedAt = time.Now()
}

// SetStatus updates the session status (thread-safe)
func (s *Session) SetStatus(status SessionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Status = status
	s.UpdatedAt = time.Now()
}

// SetError sets the error message and status (thread-safe)
func (s *Session) SetError(err string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Error = err
	s.Status = StatusFailed
	s.UpdatedAt = time.Now()
}

// SetCancelFunc stores the cancel function for this session (thread-safe)
func (s *Session) SetCancelFunc(cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelFunc = cancel
}

// Cancel cancels the session processing (thread-safe)
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.Status = StatusCancelled
		s.UpdatedAt = time.Now()
		return true
	}
	return false
}

// SetTimedOut marks the session as timed out (thread-safe)
func (s *Session) SetTimedOut(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Error = message
	s.Status = StatusTimedOut
	s.UpdatedAt = time.Now()
}

// Clone creates a safe copy of the session for reading
func (s *Session) Clone() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Deep copy messages
	messages := make([]Message, len(s.Messages))
	copy(messages, s.Messages)

	return Session{
		ID:        s.ID,
		Messages:  messages,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Error:     s.Error,
	}
}

// transcript is the serialized checkpoint form of a session.
type transcript struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// EncodeTranscript serializes the session transcript as base64 JSON for
// checkpointing. A fresh sandbox hydrates from it to resume mid-spec.
func (s *Session) EncodeTranscript() (string, error) {
	snapshot := s.Clone()
	raw, err := json.Marshal(transcript{ID: snapshot.ID, Messages: snapshot.Messages})
	if err != nil {
		return "", fmt.Errorf("failed to encode transcript: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeTranscript rebuilds a session from a base64 transcript.
func DecodeTranscript(encoded string) (*Session, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	var t transcript
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	now := time.Now()
	return &Session{
		ID:        t.ID,
		Messages:  t.Messages,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
