package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// MessageService queues messages for injection into running sandboxes and
// serves the worker's poll/ack protocol. The BIGSERIAL row id is the
// per-sandbox monotone cursor: a poll with cursor C returns only messages
// strictly after C, so a successful ack of C makes redelivery of anything
// at or before C impossible.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Queue appends a message for the sandbox and returns its cursor position.
func (s *MessageService) Queue(ctx context.Context, sandboxID string, req models.QueueMessageRequest) (*ent.SandboxMessage, error) {
	if sandboxID == "" {
		return nil, NewValidationError("sandbox_id", "required")
	}
	switch req.Type {
	case models.MessageTypeUser, models.MessageTypeInterrupt,
		models.MessageTypeGuardianNudge, models.MessageTypeSystem:
	default:
		return nil, NewValidationError("type", fmt.Sprintf("unknown message type %q", req.Type))
	}

	created, err := s.client.SandboxMessage.Create().
		SetSandboxID(sandboxID).
		SetMessageType(sandboxmessage.MessageType(req.Type)).
		SetContent(req.Content).
		SetCancel(req.Cancel).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to queue message for sandbox %s: %w", sandboxID, err)
	}
	return created, nil
}

// Poll returns messages for the sandbox strictly after the cursor, oldest
// first. Delivery is at-least-once: unacked messages are returned again on
// the next poll with the same cursor.
func (s *MessageService) Poll(ctx context.Context, sandboxID string, cursor int64, limit int) (models.MessagePollResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.SandboxMessage.Query().
		Where(
			sandboxmessage.SandboxIDEQ(sandboxID),
			sandboxmessage.IDGT(cursor),
		).
		Order(ent.Asc(sandboxmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return models.MessagePollResponse{}, fmt.Errorf("failed to poll messages for sandbox %s: %w", sandboxID, err)
	}

	resp := models.MessagePollResponse{NextCursor: cursor}
	for _, row := range rows {
		resp.Messages = append(resp.Messages, models.InjectedMessage{
			ID:        strconv.FormatInt(row.ID, 10),
			SandboxID: row.SandboxID,
			Type:      models.InjectedMessageType(row.MessageType),
			Content:   row.Content,
			Cancel:    row.Cancel,
			Cursor:    row.ID,
			CreatedAt: row.CreatedAt,
		})
		resp.NextCursor = row.ID
	}
	return resp, nil
}

// Ack marks every message at or before cursor as delivered.
func (s *MessageService) Ack(ctx context.Context, sandboxID string, cursor int64) error {
	_, err := s.client.SandboxMessage.Update().
		Where(
			sandboxmessage.SandboxIDEQ(sandboxID),
			sandboxmessage.IDLTE(cursor),
			sandboxmessage.AckedEQ(false),
		).
		SetAcked(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to ack messages for sandbox %s: %w", sandboxID, err)
	}
	return nil
}

// PendingCount returns how many unacked messages a sandbox has — a queue
// impact signal for the anomaly score.
func (s *MessageService) PendingCount(ctx context.Context, sandboxID string) (int, error) {
	n, err := s.client.SandboxMessage.Query().
		Where(
			sandboxmessage.SandboxIDEQ(sandboxID),
			sandboxmessage.AckedEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending messages for sandbox %s: %w", sandboxID, err)
	}
	return n, nil
}
