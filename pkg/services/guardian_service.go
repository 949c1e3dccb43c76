package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
)

// RecordActionRequest describes a guardian intervention to be recorded.
type RecordActionRequest struct {
	ActionType     guardianaction.ActionType
	TargetAgentID  string
	TargetTaskID   string
	AuthorityLevel int
	Reason         string
	Initiator      string
	Params         map[string]interface{}
	ReviewDeadline *time.Time
	AutoApproved   bool
}

// GuardianService records guardian actions and their audit trail.
type GuardianService struct {
	client *ent.Client
}

// NewGuardianService creates a new GuardianService.
func NewGuardianService(client *ent.Client) *GuardianService {
	return &GuardianService{client: client}
}

// RecordAction writes a new action row. Auto-approved actions start in
// approved; everything else starts pending_review.
func (s *GuardianService) RecordAction(ctx context.Context, req RecordActionRequest) (*ent.GuardianAction, error) {
	if req.TargetAgentID == "" {
		return nil, NewValidationError("target_agent_id", "required")
	}
	if req.Reason == "" {
		return nil, NewValidationError("reason", "required")
	}

	status := guardianaction.StatusPendingReview
	if req.AutoApproved {
		status = guardianaction.StatusApproved
	}

	builder := s.client.GuardianAction.Create().
		SetID(uuid.New().String()).
		SetActionType(req.ActionType).
		SetTargetAgentID(req.TargetAgentID).
		SetAuthorityLevel(req.AuthorityLevel).
		SetReason(req.Reason).
		SetInitiator(req.Initiator).
		SetStatus(status).
		SetAuditLog([]map[string]interface{}{auditEntry(req.Initiator, "created: "+req.Reason)})

	if req.TargetTaskID != "" {
		builder.SetTargetTaskID(req.TargetTaskID)
	}
	if req.Params != nil {
		builder.SetParams(req.Params)
	}
	if req.ReviewDeadline != nil {
		builder.SetReviewDeadline(*req.ReviewDeadline)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record guardian action: %w", err)
	}
	return created, nil
}

// Approve marks a pending action approved by the given approver.
func (s *GuardianService) Approve(ctx context.Context, actionID, approver string) (*ent.GuardianAction, error) {
	a, err := s.get(ctx, actionID)
	if err != nil {
		return nil, err
	}
	if a.Status != guardianaction.StatusPendingReview {
		return nil, fmt.Errorf("action %s is %s, not pending_review: %w", actionID, a.Status, ErrInvalidInput)
	}
	updated, err := s.client.GuardianAction.UpdateOneID(actionID).
		SetStatus(guardianaction.StatusApproved).
		SetApprovedBy(approver).
		SetAuditLog(append(a.AuditLog, auditEntry(approver, "approved"))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve action %s: %w", actionID, err)
	}
	return updated, nil
}

// MarkExecuted records that the action's remediation ran.
func (s *GuardianService) MarkExecuted(ctx context.Context, actionID, actor string) error {
	a, err := s.get(ctx, actionID)
	if err != nil {
		return err
	}
	err = s.client.GuardianAction.UpdateOneID(actionID).
		SetStatus(guardianaction.StatusExecuted).
		SetExecutedAt(time.Now()).
		SetAuditLog(append(a.AuditLog, auditEntry(actor, "executed"))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark action %s executed: %w", actionID, err)
	}
	return nil
}

// ExpirePending flips pending actions past their review deadline to
// timed_out and returns them so the guardian can re-queue the incidents at
// elevated severity. Timed-out actions are never executed.
func (s *GuardianService) ExpirePending(ctx context.Context, now time.Time) ([]*ent.GuardianAction, error) {
	pending, err := s.client.GuardianAction.Query().
		Where(
			guardianaction.StatusEQ(guardianaction.StatusPendingReview),
			guardianaction.ReviewDeadlineNotNil(),
			guardianaction.ReviewDeadlineLT(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending guardian actions: %w", err)
	}
	for _, a := range pending {
		err := s.client.GuardianAction.UpdateOneID(a.ID).
			SetStatus(guardianaction.StatusTimedOut).
			SetAuditLog(append(a.AuditLog, auditEntry("guardian", "review deadline expired"))).
			Exec(ctx)
		if err != nil {
			return pending, fmt.Errorf("failed to time out action %s: %w", a.ID, err)
		}
	}
	return pending, nil
}

// ListForAgent returns an agent's intervention history, newest first.
func (s *GuardianService) ListForAgent(ctx context.Context, agentID string, limit int) ([]*ent.GuardianAction, error) {
	q := s.client.GuardianAction.Query().
		Where(guardianaction.TargetAgentIDEQ(agentID)).
		Order(ent.Desc(guardianaction.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	actions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for agent %s: %w", agentID, err)
	}
	return actions, nil
}

// PruneFinished deletes executed, rejected, and timed-out actions created
// before cutoff. The audit trail for recent interventions stays intact.
func (s *GuardianService) PruneFinished(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.GuardianAction.Delete().
		Where(
			guardianaction.StatusIn(
				guardianaction.StatusExecuted,
				guardianaction.StatusRejected,
				guardianaction.StatusTimedOut,
			),
			guardianaction.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune guardian actions: %w", err)
	}
	return count, nil
}

func (s *GuardianService) get(ctx context.Context, id string) (*ent.GuardianAction, error) {
	a, err := s.client.GuardianAction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("guardian action %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get guardian action: %w", err)
	}
	return a, nil
}

func auditEntry(actor, note string) map[string]interface{} {
	return map[string]interface{}{
		"at":    time.Now().UTC().Format(time.RFC3339),
		"actor": actor,
		"note":  note,
	}
}
