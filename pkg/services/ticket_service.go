package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/ticket"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// TicketService manages ticket lifecycle. Dependency mutations are rejected
// if they would introduce a cycle: the dependency graph is stored as
// adjacency lists and checked before every write.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService.
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// CreateTicket creates a ticket in draft state.
func (s *TicketService) CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.TicketID == "" {
		req.TicketID = uuid.New().String()
	}

	if len(req.BlockedBy) > 0 {
		if err := s.checkNoCycle(ctx, req.TicketID, req.BlockedBy); err != nil {
			return nil, err
		}
	}

	builder := s.client.Ticket.Create().
		SetID(req.TicketID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetPriority(req.Priority)

	if req.Deadline != nil {
		builder.SetDeadline(*req.Deadline)
	}
	if req.Owner != "" {
		builder.SetOwner(req.Owner)
	}
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if len(req.BlockedBy) > 0 {
		builder.SetBlockedBy(req.BlockedBy)
	}
	if len(req.Blocks) > 0 {
		builder.SetBlocks(req.Blocks)
	}
	if req.SpecID != "" {
		builder.SetSpecID(req.SpecID)
	}
	if req.Phase != "" {
		builder.SetPhase(req.Phase)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("ticket %s: %w", req.TicketID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return created, nil
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*ent.Ticket, error) {
	tk, err := s.client.Ticket.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return tk, nil
}

// ListTickets returns tickets ordered by creation time, newest first.
func (s *TicketService) ListTickets(ctx context.Context, limit int) ([]*ent.Ticket, error) {
	if limit <= 0 {
		limit = 100
	}
	tickets, err := s.client.Ticket.Query().
		Order(ent.Desc(ticket.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// SetApproval records the approval decision for a ticket.
func (s *TicketService) SetApproval(ctx context.Context, id string, approved bool) error {
	status := ticket.ApprovalStatusApproved
	if !approved {
		status = ticket.ApprovalStatusRejected
	}
	err := s.client.Ticket.UpdateOneID(id).SetApprovalStatus(status).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("ticket %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set approval for ticket %s: %w", id, err)
	}
	return nil
}

// UpdateStatusWithVersion moves the ticket to the given status iff the
// version is current.
func (s *TicketService) UpdateStatusWithVersion(ctx context.Context, id string, version int, status ticket.Status) error {
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(id), ticket.VersionEQ(version)).
		SetStatus(status).
		SetVersion(version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %s version %d: %w", id, version, ErrStaleWrite)
	}
	return nil
}

// SetBlocked flags or clears the ticket's blocked state.
func (s *TicketService) SetBlocked(ctx context.Context, id string, blocked bool, reason string) error {
	upd := s.client.Ticket.UpdateOneID(id).SetIsBlocked(blocked)
	if blocked {
		upd.SetBlockedReason(reason)
	} else {
		upd.ClearBlockedReason()
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("ticket %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set blocked on ticket %s: %w", id, err)
	}
	return nil
}

// AddDependency adds blockerID to id's blocked_by list, rejecting cycles.
func (s *TicketService) AddDependency(ctx context.Context, id, blockerID string) error {
	tk, err := s.GetTicket(ctx, id)
	if err != nil {
		return err
	}
	for _, existing := range tk.BlockedBy {
		if existing == blockerID {
			return nil
		}
	}
	if err := s.checkNoCycle(ctx, id, append(append([]string{}, tk.BlockedBy...), blockerID)); err != nil {
		return err
	}
	err = s.client.Ticket.UpdateOneID(id).
		SetBlockedBy(append(tk.BlockedBy, blockerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add dependency %s to ticket %s: %w", blockerID, id, err)
	}
	return nil
}

// checkNoCycle verifies that making id depend on blockedBy does not create
// a cycle: id must not be reachable by walking blocked_by edges from any of
// its would-be blockers.
func (s *TicketService) checkNoCycle(ctx context.Context, id string, blockedBy []string) error {
	visited := map[string]bool{}
	frontier := append([]string{}, blockedBy...)
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == id {
			return fmt.Errorf("ticket %s cannot depend on itself (directly or transitively): %w", id, ErrCircularDependency)
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		tk, err := s.client.Ticket.Get(ctx, cur)
		if err != nil {
			if ent.IsNotFound(err) {
				// Forward reference to a ticket that does not exist yet —
				// resolved at validation time, not a cycle.
				continue
			}
			return fmt.Errorf("failed to walk dependency graph at %s: %w", cur, err)
		}
		frontier = append(frontier, tk.BlockedBy...)
	}
	return nil
}
