package services

import (
	"context"
	"fmt"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// EventService is the append-only store for sandbox events and the
// persistence sink of the event bus. Replay from the store is the
// authoritative event order.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append stores a worker-reported event. Idempotent on the report id:
// replaying the same (sandbox_id, event id) returns the existing row.
func (s *EventService) Append(ctx context.Context, report models.SandboxEventReport) (*ent.SandboxEvent, error) {
	if report.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if report.SandboxID == "" {
		return nil, NewValidationError("sandbox_id", "required")
	}
	if report.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	source := report.Source
	if source == "" {
		source = models.EventSourceWorker
	}

	builder := s.client.SandboxEvent.Create().
		SetEventKey(report.ID).
		SetSandboxID(report.SandboxID).
		SetEventType(report.EventType).
		SetSource(sandboxevent.Source(source))
	if report.EventData != nil {
		builder.SetEventData(report.EventData)
	}
	if report.SpecID != "" {
		builder.SetSpecID(report.SpecID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate delivery — return the original row.
			existing, getErr := s.client.SandboxEvent.Query().
				Where(sandboxevent.EventKeyEQ(report.ID)).
				Only(ctx)
			if getErr != nil {
				return nil, fmt.Errorf("failed to load existing event %s: %w", report.ID, getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to append event %s: %w", report.ID, err)
	}
	return created, nil
}

// Persist implements bus.Sink: orchestrator-side bus envelopes share the
// sandbox event table, keyed by envelope id.
func (s *EventService) Persist(ctx context.Context, e bus.Envelope) error {
	builder := s.client.SandboxEvent.Create().
		SetEventKey(e.ID).
		SetSandboxID("orchestrator").
		SetEventType(e.EventType).
		SetSource(sandboxevent.SourceSystem).
		SetEntityType(e.EntityType).
		SetEntityID(e.EntityID)
	if e.Payload != nil {
		builder.SetEventData(e.Payload)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil // duplicate publish, already durable
		}
		return fmt.Errorf("failed to persist bus event %s: %w", e.ID, err)
	}
	return nil
}

// Catchup returns up to limit events for a sandbox with row id > sinceID,
// in append order.
func (s *EventService) Catchup(ctx context.Context, sandboxID string, sinceID int64, limit int) ([]*ent.SandboxEvent, error) {
	if limit <= 0 {
		limit = 200
	}
	events, err := s.client.SandboxEvent.Query().
		Where(
			sandboxevent.SandboxIDEQ(sandboxID),
			sandboxevent.IDGT(sinceID),
		).
		Order(ent.Asc(sandboxevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to catch up events for sandbox %s: %w", sandboxID, err)
	}
	return events, nil
}

// ListByEntity returns the stored event stream for one entity in append
// order — the replay source for the bus ordering guarantee.
func (s *EventService) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]*ent.SandboxEvent, error) {
	q := s.client.SandboxEvent.Query().
		Where(
			sandboxevent.EntityTypeEQ(entityType),
			sandboxevent.EntityIDEQ(entityID),
		).
		Order(ent.Asc(sandboxevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s/%s: %w", entityType, entityID, err)
	}
	return events, nil
}

// PruneBefore deletes events created before cutoff. Idempotent and safe to
// run from multiple pods.
func (s *EventService) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.SandboxEvent.Delete().
		Where(sandboxevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return count, nil
}
