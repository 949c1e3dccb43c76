package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
)

// MergeService records merge attempts: the audit trail of each convergence
// run over sibling task branches.
type MergeService struct {
	client *ent.Client
}

// NewMergeService creates a new MergeService.
func NewMergeService(client *ent.Client) *MergeService {
	return &MergeService{client: client}
}

// StartAttempt records a new in_progress merge attempt.
func (s *MergeService) StartAttempt(ctx context.Context, parentTaskID, ticketID, targetBranch string, sourceTaskIDs, incomingBranches []string) (*ent.MergeAttempt, error) {
	if parentTaskID == "" {
		return nil, NewValidationError("parent_task_id", "required")
	}
	if len(sourceTaskIDs) == 0 {
		return nil, NewValidationError("source_task_ids", "required")
	}
	created, err := s.client.MergeAttempt.Create().
		SetID(uuid.New().String()).
		SetParentTaskID(parentTaskID).
		SetTicketID(ticketID).
		SetTargetBranch(targetBranch).
		SetSourceTaskIds(sourceTaskIDs).
		SetIncomingBranches(incomingBranches).
		SetStatus(mergeattempt.StatusInProgress).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start merge attempt for %s: %w", parentTaskID, err)
	}
	return created, nil
}

// MergeOutcome is the final accounting of a merge attempt.
type MergeOutcome struct {
	Succeeded      bool
	MergeOrder     []string
	ConflictScores map[string]int
	LLMInvocations int
	TokensUsed     int64
	CostUSD        float64
	ResolutionLog  []map[string]interface{}
	FailureReason  string
}

// Complete finalizes a merge attempt with its outcome.
func (s *MergeService) Complete(ctx context.Context, attemptID string, outcome MergeOutcome) (*ent.MergeAttempt, error) {
	status := mergeattempt.StatusSucceeded
	if !outcome.Succeeded {
		status = mergeattempt.StatusFailed
	}
	upd := s.client.MergeAttempt.UpdateOneID(attemptID).
		SetStatus(status).
		SetMergeOrder(outcome.MergeOrder).
		SetConflictScores(outcome.ConflictScores).
		SetLlmInvocations(outcome.LLMInvocations).
		SetTokensUsed(outcome.TokensUsed).
		SetCostUsd(outcome.CostUSD).
		SetCompletedAt(time.Now())
	if outcome.ResolutionLog != nil {
		upd.SetResolutionLog(outcome.ResolutionLog)
	}
	if outcome.FailureReason != "" {
		upd.SetFailureReason(outcome.FailureReason)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("merge attempt %s: %w", attemptID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to complete merge attempt %s: %w", attemptID, err)
	}
	return updated, nil
}

// ListForParent returns merge attempts for a convergence task, newest first.
func (s *MergeService) ListForParent(ctx context.Context, parentTaskID string) ([]*ent.MergeAttempt, error) {
	attempts, err := s.client.MergeAttempt.Query().
		Where(mergeattempt.ParentTaskIDEQ(parentTaskID)).
		Order(ent.Desc(mergeattempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list merge attempts for %s: %w", parentTaskID, err)
	}
	return attempts, nil
}
