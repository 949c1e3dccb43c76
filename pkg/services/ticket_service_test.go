package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/ticket"
	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestTicketService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTicket(ctx, models.CreateTicketRequest{
		TicketID:    "TKT-100",
		Title:       "Add message search",
		Description: "Full text search over archived sandboxes",
		Priority:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusDraft, created.Status)

	got, err := service.GetTicket(ctx, "TKT-100")
	require.NoError(t, err)
	assert.Equal(t, "Add message search", got.Title)

	_, err = service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-100", Title: "dup"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = service.GetTicket(ctx, "TKT-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketService_CycleRejection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	// TKT-A <- TKT-B <- TKT-C (each blocked by the previous).
	_, err := service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-A", Title: "a"})
	require.NoError(t, err)
	_, err = service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-B", Title: "b", BlockedBy: []string{"TKT-A"}})
	require.NoError(t, err)
	_, err = service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-C", Title: "c", BlockedBy: []string{"TKT-B"}})
	require.NoError(t, err)

	t.Run("direct cycle", func(t *testing.T) {
		err := service.AddDependency(ctx, "TKT-A", "TKT-A")
		assert.ErrorIs(t, err, ErrCircularDependency)
	})

	t.Run("transitive cycle", func(t *testing.T) {
		// A depending on C would close A <- B <- C <- A.
		err := service.AddDependency(ctx, "TKT-A", "TKT-C")
		assert.ErrorIs(t, err, ErrCircularDependency)
	})

	t.Run("create with cyclic blocked_by", func(t *testing.T) {
		// A new ticket blocked by C that C already (transitively) awaits.
		_, err := service.CreateTicket(ctx, models.CreateTicketRequest{
			TicketID:  "TKT-A",
			Title:     "rewrite of a",
			BlockedBy: []string{"TKT-C"},
		})
		assert.ErrorIs(t, err, ErrCircularDependency)
	})

	t.Run("acyclic additions pass", func(t *testing.T) {
		require.NoError(t, service.AddDependency(ctx, "TKT-C", "TKT-A"))
		// Idempotent re-add.
		require.NoError(t, service.AddDependency(ctx, "TKT-C", "TKT-A"))

		got, err := service.GetTicket(ctx, "TKT-C")
		require.NoError(t, err)
		assert.Equal(t, []string{"TKT-B", "TKT-A"}, got.BlockedBy)
	})

	t.Run("forward reference is not a cycle", func(t *testing.T) {
		require.NoError(t, service.AddDependency(ctx, "TKT-B", "TKT-future"))
	})
}

func TestTicketService_VersionedStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-VER", Title: "versioned"})
	require.NoError(t, err)

	require.NoError(t, service.UpdateStatusWithVersion(ctx, created.ID, created.Version, ticket.StatusInProgress))

	// The same version again is stale.
	err = service.UpdateStatusWithVersion(ctx, created.ID, created.Version, ticket.StatusDone)
	assert.ErrorIs(t, err, ErrStaleWrite)

	got, err := service.GetTicket(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, got.Status)
	assert.Equal(t, created.Version+1, got.Version)
}

func TestTicketService_BlockedFlag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTicketService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-BLK", Title: "blocked"})
	require.NoError(t, err)

	require.NoError(t, service.SetBlocked(ctx, created.ID, true, "waiting on design approval"))
	got, err := service.GetTicket(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	require.NoError(t, service.SetBlocked(ctx, created.ID, false, ""))
	got, err = service.GetTicket(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBlocked)
}
