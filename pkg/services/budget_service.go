package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
)

// BudgetScope identifies a budget row.
type BudgetScope struct {
	Type   budget.ScopeType
	ID     string
	Period string
}

// Reservation is a pre-call hold against a budget, settled (and the
// difference refunded) once the actual cost is known.
type Reservation struct {
	BudgetID string
	ScopeID  string
	Amount   float64
}

// CostUsage is the final accounting of one LLM call.
type CostUsage struct {
	TaskID           string
	AgentID          string
	Provider         string
	Model            string
	PromptTokens     int64
	CompletionTokens int64
	PromptCost       float64
	CompletionCost   float64
	SandboxID        string
	BillingAccount   string
}

// TotalCost returns the settled cost of the call.
func (u CostUsage) TotalCost() float64 {
	return u.PromptCost + u.CompletionCost
}

// BudgetService is the cost accountant: it records per-call cost and
// enforces rolling budgets per scope. Invariant at all times:
// spent + reserved <= limit. A call that would underflow remaining is
// rejected with ErrBudgetExhausted before it is made.
type BudgetService struct {
	client *ent.Client
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(client *ent.Client) *BudgetService {
	return &BudgetService{client: client}
}

// CreateBudget creates a budget row for a scope.
func (s *BudgetService) CreateBudget(ctx context.Context, scope BudgetScope, limitUSD, alertThreshold float64) (*ent.Budget, error) {
	if limitUSD <= 0 {
		return nil, NewValidationError("limit_usd", "must be positive")
	}
	if scope.Period == "" {
		scope.Period = "total"
	}
	builder := s.client.Budget.Create().
		SetID(uuid.New().String()).
		SetScopeType(scope.Type).
		SetScopeID(scope.ID).
		SetLimitUsd(limitUSD).
		SetPeriod(scope.Period)
	if alertThreshold > 0 {
		builder.SetAlertThreshold(alertThreshold)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("budget for %s/%s: %w", scope.Type, scope.ID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return created, nil
}

// GetBudget loads the budget row for a scope, or ErrNotFound.
func (s *BudgetService) GetBudget(ctx context.Context, scope BudgetScope) (*ent.Budget, error) {
	if scope.Period == "" {
		scope.Period = "total"
	}
	b, err := s.client.Budget.Query().
		Where(
			budget.ScopeTypeEQ(scope.Type),
			budget.ScopeIDEQ(scope.ID),
			budget.PeriodEQ(scope.Period),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("budget for %s/%s: %w", scope.Type, scope.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return b, nil
}

// Remaining returns limit − spent − reserved for a scope. Scopes without a
// budget row are unlimited.
func (s *BudgetService) Remaining(ctx context.Context, scope BudgetScope) (float64, bool, error) {
	b, err := s.GetBudget(ctx, scope)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return b.LimitUsd - b.SpentUsd - b.ReservedUsd, true, nil
}

// Reserve places a pre-call hold of amount against the scope. Returns
// ErrBudgetExhausted when remaining < amount. Version-checked and retried
// so concurrent reservations never overshoot the limit.
func (s *BudgetService) Reserve(ctx context.Context, scope BudgetScope, amount float64) (*Reservation, error) {
	if amount < 0 {
		return nil, NewValidationError("amount", "must be non-negative")
	}
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		b, err := s.GetBudget(ctx, scope)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// No budget row for this scope — unlimited, nothing to hold.
				return &Reservation{ScopeID: scope.ID, Amount: amount}, nil
			}
			return nil, err
		}
		if b.LimitUsd-b.SpentUsd-b.ReservedUsd < amount {
			return nil, fmt.Errorf("budget %s/%s: reservation %.4f exceeds remaining %.4f: %w",
				scope.Type, scope.ID, amount, b.LimitUsd-b.SpentUsd-b.ReservedUsd, ErrBudgetExhausted)
		}
		n, err := s.client.Budget.Update().
			Where(budget.IDEQ(b.ID), budget.VersionEQ(b.Version)).
			SetReservedUsd(b.ReservedUsd + amount).
			SetVersion(b.Version + 1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reserve budget: %w", err)
		}
		if n > 0 {
			return &Reservation{BudgetID: b.ID, ScopeID: scope.ID, Amount: amount}, nil
		}
	}
	return nil, fmt.Errorf("reserve %s/%s: %w", scope.Type, scope.ID, ErrStaleWrite)
}

// Settle releases the reservation, records the actual cost, and refunds
// the difference. The CostRecord row is written first so Budget.spent is
// always reconcilable as sum(total_cost) within the period.
func (s *BudgetService) Settle(ctx context.Context, res *Reservation, usage CostUsage) (*ent.CostRecord, error) {
	if usage.TaskID == "" {
		return nil, NewValidationError("task_id", "cost records must link to a task")
	}

	record, err := s.client.CostRecord.Create().
		SetID(uuid.New().String()).
		SetTaskID(usage.TaskID).
		SetAgentID(usage.AgentID).
		SetProvider(usage.Provider).
		SetModel(usage.Model).
		SetPromptTokens(usage.PromptTokens).
		SetCompletionTokens(usage.CompletionTokens).
		SetPromptCost(usage.PromptCost).
		SetCompletionCost(usage.CompletionCost).
		SetTotalCost(usage.TotalCost()).
		SetSandboxID(usage.SandboxID).
		SetBillingAccount(usage.BillingAccount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record cost for task %s: %w", usage.TaskID, err)
	}

	if res == nil || res.BudgetID == "" {
		return record, nil
	}

	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		b, err := s.client.Budget.Get(ctx, res.BudgetID)
		if err != nil {
			return record, fmt.Errorf("failed to load budget %s for settlement: %w", res.BudgetID, err)
		}
		reserved := b.ReservedUsd - res.Amount
		if reserved < 0 {
			reserved = 0
		}
		n, err := s.client.Budget.Update().
			Where(budget.IDEQ(b.ID), budget.VersionEQ(b.Version)).
			SetReservedUsd(reserved).
			SetSpentUsd(b.SpentUsd + usage.TotalCost()).
			SetVersion(b.Version + 1).
			Save(ctx)
		if err != nil {
			return record, fmt.Errorf("failed to settle budget %s: %w", b.ID, err)
		}
		if n > 0 {
			return record, nil
		}
	}
	return record, fmt.Errorf("settle budget %s: %w", res.BudgetID, ErrStaleWrite)
}

// Release drops a reservation without recording cost (call never happened).
func (s *BudgetService) Release(ctx context.Context, res *Reservation) error {
	if res == nil || res.BudgetID == "" {
		return nil
	}
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		b, err := s.client.Budget.Get(ctx, res.BudgetID)
		if err != nil {
			return fmt.Errorf("failed to load budget %s for release: %w", res.BudgetID, err)
		}
		reserved := b.ReservedUsd - res.Amount
		if reserved < 0 {
			reserved = 0
		}
		n, err := s.client.Budget.Update().
			Where(budget.IDEQ(b.ID), budget.VersionEQ(b.Version)).
			SetReservedUsd(reserved).
			SetVersion(b.Version + 1).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to release reservation on budget %s: %w", b.ID, err)
		}
		if n > 0 {
			return nil
		}
	}
	return fmt.Errorf("release budget %s: %w", res.BudgetID, ErrStaleWrite)
}

// OverAlertThreshold returns budgets whose spending crossed their alert
// threshold and have not been alerted yet, marking them alerted.
func (s *BudgetService) OverAlertThreshold(ctx context.Context) ([]*ent.Budget, error) {
	budgets, err := s.client.Budget.Query().
		Where(budget.AlertedEQ(false)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan budgets: %w", err)
	}
	var crossed []*ent.Budget
	for _, b := range budgets {
		if b.SpentUsd+b.ReservedUsd >= b.LimitUsd*b.AlertThreshold {
			if err := s.client.Budget.UpdateOneID(b.ID).SetAlerted(true).Exec(ctx); err != nil {
				return crossed, fmt.Errorf("failed to mark budget %s alerted: %w", b.ID, err)
			}
			crossed = append(crossed, b)
		}
	}
	return crossed, nil
}

// SpentWithin recomputes spend from cost records within a time window —
// the reconciliation source of truth for Budget.spent.
func (s *BudgetService) SpentWithin(ctx context.Context, taskID string, from, to time.Time) (float64, error) {
	records, err := s.client.CostRecord.Query().
		Where(
			costrecord.TaskIDEQ(taskID),
			costrecord.CreatedAtGTE(from),
			costrecord.CreatedAtLTE(to),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum cost records for task %s: %w", taskID, err)
	}
	var total float64
	for _, r := range records {
		total += r.TotalCost
	}
	return total, nil
}
