package services

import (
	"context"
	"fmt"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// AllocationService tracks sandbox resource envelopes. Resizes stage their
// target values in the pending_* columns until the provider confirms.
type AllocationService struct {
	client *ent.Client
}

// NewAllocationService creates a new AllocationService.
func NewAllocationService(client *ent.Client) *AllocationService {
	return &AllocationService{client: client}
}

// Record creates the allocation row when a sandbox is provisioned.
func (s *AllocationService) Record(ctx context.Context, sandboxID string, env models.ResourceEnvelope, updatedBy string) (*ent.SandboxAllocation, error) {
	if sandboxID == "" {
		return nil, NewValidationError("sandbox_id", "required")
	}
	created, err := s.client.SandboxAllocation.Create().
		SetID(sandboxID).
		SetCPUCores(env.CPUCores).
		SetMemoryMB(env.MemoryMB).
		SetDiskMB(env.DiskMB).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("allocation for sandbox %s: %w", sandboxID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to record allocation: %w", err)
	}
	return created, nil
}

// StageResize stages a pending resize, version-checked.
func (s *AllocationService) StageResize(ctx context.Context, sandboxID string, target models.ResourceEnvelope, updatedBy string) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		alloc, err := s.get(ctx, sandboxID)
		if err != nil {
			return err
		}
		n, err := s.client.SandboxAllocation.Update().
			Where(
				sandboxallocation.IDEQ(sandboxID),
				sandboxallocation.VersionEQ(alloc.Version),
			).
			SetPendingCPUCores(target.CPUCores).
			SetPendingMemoryMB(target.MemoryMB).
			SetPendingDiskMB(target.DiskMB).
			SetUpdatedBy(updatedBy).
			SetVersion(alloc.Version + 1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to stage resize for sandbox %s: %w", sandboxID, err)
		}
		if n > 0 {
			return nil
		}
	}
	return fmt.Errorf("stage resize for sandbox %s: %w", sandboxID, ErrStaleWrite)
}

// CommitResize promotes the pending values once the provider confirms.
func (s *AllocationService) CommitResize(ctx context.Context, sandboxID, updatedBy string) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		alloc, err := s.get(ctx, sandboxID)
		if err != nil {
			return err
		}
		if alloc.PendingCPUCores == nil && alloc.PendingMemoryMB == nil && alloc.PendingDiskMB == nil {
			return nil
		}
		upd := s.client.SandboxAllocation.Update().
			Where(
				sandboxallocation.IDEQ(sandboxID),
				sandboxallocation.VersionEQ(alloc.Version),
			).
			SetUpdatedBy(updatedBy).
			SetVersion(alloc.Version + 1).
			ClearPendingCPUCores().
			ClearPendingMemoryMB().
			ClearPendingDiskMB()
		if alloc.PendingCPUCores != nil {
			upd.SetCPUCores(*alloc.PendingCPUCores)
		}
		if alloc.PendingMemoryMB != nil {
			upd.SetMemoryMB(*alloc.PendingMemoryMB)
		}
		if alloc.PendingDiskMB != nil {
			upd.SetDiskMB(*alloc.PendingDiskMB)
		}
		n, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to commit resize for sandbox %s: %w", sandboxID, err)
		}
		if n > 0 {
			return nil
		}
	}
	return fmt.Errorf("commit resize for sandbox %s: %w", sandboxID, ErrStaleWrite)
}

func (s *AllocationService) get(ctx context.Context, sandboxID string) (*ent.SandboxAllocation, error) {
	alloc, err := s.client.SandboxAllocation.Get(ctx, sandboxID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("allocation for sandbox %s: %w", sandboxID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return alloc, nil
}
