package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

func TestCreateTask(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.CreateTaskRequest{
		TaskID: "TSK-001",
		Title:  "Implement parser",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "TSK-001")
}

func TestCreateTaskValidationError(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.CreateTaskRequest{Title: "no id"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "task_id")
}

func TestGetTaskNotFound(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodGet, "/api/v1/tasks/TSK-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodGet, "/api/v1/tasks?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTasksFiltersByStatus(t *testing.T) {
	f := newFixture()
	f.tasks.tasks["TSK-001"] = &ent.Task{ID: "TSK-001", Status: task.StatusRunning}
	f.tasks.tasks["TSK-002"] = &ent.Task{ID: "TSK-002", Status: task.StatusPending}

	rec := f.do(t, http.MethodGet, "/api/v1/tasks?status=running", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TSK-001")
	assert.NotContains(t, rec.Body.String(), "TSK-002")
}

func TestCancelTaskMarksAndCancelsInPod(t *testing.T) {
	f := newFixture()
	f.pool.cancelResult = true

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/TSK-001/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"TSK-001"}, f.tasks.canceled)
	assert.Equal(t, []string{"TSK-001"}, f.pool.canceled)
}

func TestCancelTaskSucceedsWhenOnlyPoolCancels(t *testing.T) {
	// The DB row is already terminal but the in-pod worker is still running.
	f := newFixture()
	f.tasks.cancelErr = services.ErrNotFound
	f.pool.cancelResult = true

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/TSK-001/cancel", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelTaskFailsWhenNothingCancels(t *testing.T) {
	f := newFixture()
	f.tasks.cancelErr = services.ErrNotFound
	f.pool.cancelResult = false

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/TSK-001/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTicketApproval(t *testing.T) {
	f := newFixture()
	f.tickets.tickets["TKT-001"] = &ent.Ticket{ID: "TKT-001"}

	rec := f.do(t, http.MethodPost, "/api/v1/tickets/TKT-001/approval", approvalRequest{Approved: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.tickets.approvals["TKT-001"])
}

func TestListTickets(t *testing.T) {
	f := newFixture()
	f.tickets.tickets["TKT-001"] = &ent.Ticket{ID: "TKT-001"}
	f.tickets.tickets["TKT-002"] = &ent.Ticket{ID: "TKT-002"}

	rec := f.do(t, http.MethodGet, "/api/v1/tickets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestGuardianActionApproval(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/guardian/actions/act-7/approve", approveActionRequest{Approver: "oncall"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"act-7/oncall"}, f.guardian.approved)
}

func TestGuardianActionApprovalRequiresApprover(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/guardian/actions/act-7/approve", approveActionRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.guardian.approved)
}
