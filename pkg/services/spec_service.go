package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// phaseOrder gives the forward-only ordering of spec phases.
var phaseOrder = map[specdoc.CurrentPhase]int{
	specdoc.CurrentPhaseExplore:      0,
	specdoc.CurrentPhaseRequirements: 1,
	specdoc.CurrentPhaseDesign:       2,
	specdoc.CurrentPhaseTasks:        3,
	specdoc.CurrentPhaseSync:         4,
	specdoc.CurrentPhaseComplete:     5,
}

// SpecService manages spec documents and their phase checkpoints. The
// current phase only ever advances forward; a phase's accumulated data is
// frozen once the next phase begins.
type SpecService struct {
	client *ent.Client
}

// NewSpecService creates a new SpecService.
func NewSpecService(client *ent.Client) *SpecService {
	return &SpecService{client: client}
}

// CreateSpec creates a spec in the explore phase.
func (s *SpecService) CreateSpec(ctx context.Context, req models.CreateSpecRequest) (*ent.SpecDoc, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.SpecID == "" {
		req.SpecID = uuid.New().String()
	}

	builder := s.client.SpecDoc.Create().
		SetID(req.SpecID).
		SetTitle(req.Title).
		SetDescription(req.Description)
	if req.Owner != "" {
		builder.SetOwner(req.Owner)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("spec %s: %w", req.SpecID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create spec: %w", err)
	}
	return created, nil
}

// GetSpec fetches a spec by id.
func (s *SpecService) GetSpec(ctx context.Context, id string) (*ent.SpecDoc, error) {
	sp, err := s.client.SpecDoc.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("spec %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get spec: %w", err)
	}
	return sp, nil
}

// SaveCheckpoint persists the phase's accumulated data and transcript so a
// fresh sandbox can resume the spec at the next phase.
func (s *SpecService) SaveCheckpoint(ctx context.Context, id, phase string, phaseData map[string]interface{}, transcriptB64 string) error {
	sp, err := s.GetSpec(ctx, id)
	if err != nil {
		return err
	}

	data := sp.PhaseData
	if data == nil {
		data = map[string]interface{}{}
	}
	data[phase] = phaseData

	transcripts := sp.SessionTranscripts
	if transcripts == nil {
		transcripts = map[string]string{}
	}
	if transcriptB64 != "" {
		transcripts[phase] = transcriptB64
	}

	err = s.client.SpecDoc.UpdateOneID(id).
		SetPhaseData(data).
		SetSessionTranscripts(transcripts).
		SetLastCheckpointAt(time.Now()).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint for spec %s: %w", id, err)
	}
	return nil
}

// AdvancePhase moves the spec forward to next. Backward or sideways moves
// are rejected: the previous phase's artifact is frozen once the next phase
// begins.
func (s *SpecService) AdvancePhase(ctx context.Context, id string, next specdoc.CurrentPhase) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		sp, err := s.GetSpec(ctx, id)
		if err != nil {
			return err
		}
		if phaseOrder[next] <= phaseOrder[sp.CurrentPhase] {
			return fmt.Errorf("spec %s: phase may only advance forward (%s → %s): %w",
				id, sp.CurrentPhase, next, ErrInvalidInput)
		}
		n, err := s.client.SpecDoc.Update().
			Where(specdoc.IDEQ(id), specdoc.VersionEQ(sp.Version)).
			SetCurrentPhase(next).
			SetVersion(sp.Version + 1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance spec %s: %w", id, err)
		}
		if n > 0 {
			return nil
		}
	}
	return fmt.Errorf("advance spec %s: %w", id, ErrStaleWrite)
}

// RecordPhaseAttempt increments phase_attempts[phase] and records the
// evaluator feedback as last_error when the attempt failed.
func (s *SpecService) RecordPhaseAttempt(ctx context.Context, id, phase string, passed bool, feedback string) (int, error) {
	sp, err := s.GetSpec(ctx, id)
	if err != nil {
		return 0, err
	}
	attempts := sp.PhaseAttempts
	if attempts == nil {
		attempts = map[string]int{}
	}
	attempts[phase]++

	upd := s.client.SpecDoc.UpdateOneID(id).SetPhaseAttempts(attempts)
	if passed {
		upd.ClearLastError()
	} else {
		upd.SetLastError(feedback)
	}
	if err := upd.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record phase attempt for spec %s: %w", id, err)
	}
	return attempts[phase], nil
}

// Archive soft-archives the spec.
func (s *SpecService) Archive(ctx context.Context, id string) error {
	err := s.client.SpecDoc.UpdateOneID(id).SetArchived(true).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("spec %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to archive spec %s: %w", id, err)
	}
	return nil
}
