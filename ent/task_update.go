// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *TaskUpdate) SetTicketID(v string) *TaskUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTicketID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TaskUpdate) ClearTicketID() *TaskUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriorityBase sets the "priority_base" field.
func (_u *TaskUpdate) SetPriorityBase(v int) *TaskUpdate {
	_u.mutation.ResetPriorityBase()
	_u.mutation.SetPriorityBase(v)
	return _u
}

// SetNillablePriorityBase sets the "priority_base" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriorityBase(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriorityBase(*v)
	}
	return _u
}

// AddPriorityBase adds value to the "priority_base" field.
func (_u *TaskUpdate) AddPriorityBase(v int) *TaskUpdate {
	_u.mutation.AddPriorityBase(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TaskUpdate) SetScore(v float64) *TaskUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScore(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TaskUpdate) AddScore(v float64) *TaskUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdate) SetDeadline(v time.Time) *TaskUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeadline(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdate) ClearDeadline() *TaskUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdate) SetRetryCount(v int) *TaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdate) AddRetryCount(v int) *TaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdate) SetMaxRetries(v int) *TaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRetries(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdate) AddMaxRetries(v int) *TaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *TaskUpdate) SetTimeoutSeconds(v int) *TaskUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTimeoutSeconds(v *int) *TaskUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *TaskUpdate) AddTimeoutSeconds(v int) *TaskUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *TaskUpdate) SetRequiredCapabilities(v []string) *TaskUpdate {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *TaskUpdate) AppendRequiredCapabilities(v []string) *TaskUpdate {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *TaskUpdate) ClearRequiredCapabilities() *TaskUpdate {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdate) SetDependsOn(v []string) *TaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdate) AppendDependsOn(v []string) *TaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdate) ClearDependsOn() *TaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetOwnedFiles sets the "owned_files" field.
func (_u *TaskUpdate) SetOwnedFiles(v []string) *TaskUpdate {
	_u.mutation.SetOwnedFiles(v)
	return _u
}

// AppendOwnedFiles appends value to the "owned_files" field.
func (_u *TaskUpdate) AppendOwnedFiles(v []string) *TaskUpdate {
	_u.mutation.AppendOwnedFiles(v)
	return _u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (_u *TaskUpdate) ClearOwnedFiles() *TaskUpdate {
	_u.mutation.ClearOwnedFiles()
	return _u
}

// SetSynthesisContext sets the "synthesis_context" field.
func (_u *TaskUpdate) SetSynthesisContext(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetSynthesisContext(v)
	return _u
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (_u *TaskUpdate) ClearSynthesisContext() *TaskUpdate {
	_u.mutation.ClearSynthesisContext()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *TaskUpdate) SetSandboxID(v string) *TaskUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSandboxID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *TaskUpdate) ClearSandboxID() *TaskUpdate {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (_u *TaskUpdate) SetClaimedByPod(v string) *TaskUpdate {
	_u.mutation.SetClaimedByPod(v)
	return _u
}

// SetNillableClaimedByPod sets the "claimed_by_pod" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClaimedByPod(v *string) *TaskUpdate {
	if v != nil {
		_u.SetClaimedByPod(*v)
	}
	return _u
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (_u *TaskUpdate) ClearClaimedByPod() *TaskUpdate {
	_u.mutation.ClearClaimedByPod()
	return _u
}

// SetExecutionConfig sets the "execution_config" field.
func (_u *TaskUpdate) SetExecutionConfig(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetExecutionConfig(v)
	return _u
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (_u *TaskUpdate) ClearExecutionConfig() *TaskUpdate {
	_u.mutation.ClearExecutionConfig()
	return _u
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_u *TaskUpdate) SetPersistenceDir(v string) *TaskUpdate {
	_u.mutation.SetPersistenceDir(v)
	return _u
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePersistenceDir(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPersistenceDir(*v)
	}
	return _u
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (_u *TaskUpdate) ClearPersistenceDir() *TaskUpdate {
	_u.mutation.ClearPersistenceDir()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdate) SetFailureReason(v string) *TaskUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdate) ClearFailureReason() *TaskUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TaskUpdate) SetEmbedding(v []float64) *TaskUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *TaskUpdate) AppendEmbedding(v []float64) *TaskUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TaskUpdate) ClearEmbedding() *TaskUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdate) SetVersion(v int) *TaskUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVersion(v *int) *TaskUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdate) AddVersion(v int) *TaskUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaskUpdate) SetAssignedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *TaskUpdate) ClearAssignedAt() *TaskUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_u *TaskUpdate) SetTicket(v *Ticket) *TaskUpdate {
	return _u.SetTicketID(v.ID)
}

// AddCostRecordIDs adds the "cost_records" edge to the CostRecord entity by IDs.
func (_u *TaskUpdate) AddCostRecordIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCostRecordIDs(ids...)
	return _u
}

// AddCostRecords adds the "cost_records" edges to the CostRecord entity.
func (_u *TaskUpdate) AddCostRecords(v ...*CostRecord) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostRecordIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (_u *TaskUpdate) ClearTicket() *TaskUpdate {
	_u.mutation.ClearTicket()
	return _u
}

// ClearCostRecords clears all "cost_records" edges to the CostRecord entity.
func (_u *TaskUpdate) ClearCostRecords() *TaskUpdate {
	_u.mutation.ClearCostRecords()
	return _u
}

// RemoveCostRecordIDs removes the "cost_records" edge to CostRecord entities by IDs.
func (_u *TaskUpdate) RemoveCostRecordIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCostRecordIDs(ids...)
	return _u
}

// RemoveCostRecords removes "cost_records" edges to CostRecord entities.
func (_u *TaskUpdate) RemoveCostRecords(v ...*CostRecord) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityBase(); ok {
		_spec.SetField(task.FieldPriorityBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityBase(); ok {
		_spec.AddField(task.FieldPriorityBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(task.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(task.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(task.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(task.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOwnedFiles, value)
		})
	}
	if _u.mutation.OwnedFilesCleared() {
		_spec.ClearField(task.FieldOwnedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.SynthesisContext(); ok {
		_spec.SetField(task.FieldSynthesisContext, field.TypeJSON, value)
	}
	if _u.mutation.SynthesisContextCleared() {
		_spec.ClearField(task.FieldSynthesisContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(task.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedByPod(); ok {
		_spec.SetField(task.FieldClaimedByPod, field.TypeString, value)
	}
	if _u.mutation.ClaimedByPodCleared() {
		_spec.ClearField(task.FieldClaimedByPod, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionConfig(); ok {
		_spec.SetField(task.FieldExecutionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionConfigCleared() {
		_spec.ClearField(task.FieldExecutionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersistenceDir(); ok {
		_spec.SetField(task.FieldPersistenceDir, field.TypeString, value)
	}
	if _u.mutation.PersistenceDirCleared() {
		_spec.ClearField(task.FieldPersistenceDir, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(task.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(task.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(task.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.TicketTable,
			Columns: []string{task.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.TicketTable,
			Columns: []string{task.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostRecordsIDs(); len(nodes) > 0 && !_u.mutation.CostRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTicketID sets the "ticket_id" field.
func (_u *TaskUpdateOne) SetTicketID(v string) *TaskUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTicketID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TaskUpdateOne) ClearTicketID() *TaskUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriorityBase sets the "priority_base" field.
func (_u *TaskUpdateOne) SetPriorityBase(v int) *TaskUpdateOne {
	_u.mutation.ResetPriorityBase()
	_u.mutation.SetPriorityBase(v)
	return _u
}

// SetNillablePriorityBase sets the "priority_base" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriorityBase(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriorityBase(*v)
	}
	return _u
}

// AddPriorityBase adds value to the "priority_base" field.
func (_u *TaskUpdateOne) AddPriorityBase(v int) *TaskUpdateOne {
	_u.mutation.AddPriorityBase(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TaskUpdateOne) SetScore(v float64) *TaskUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScore(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TaskUpdateOne) AddScore(v float64) *TaskUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdateOne) SetDeadline(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeadline(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdateOne) ClearDeadline() *TaskUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdateOne) SetRetryCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdateOne) AddRetryCount(v int) *TaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdateOne) SetMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRetries(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdateOne) AddMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *TaskUpdateOne) SetTimeoutSeconds(v int) *TaskUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTimeoutSeconds(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *TaskUpdateOne) AddTimeoutSeconds(v int) *TaskUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *TaskUpdateOne) SetRequiredCapabilities(v []string) *TaskUpdateOne {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *TaskUpdateOne) AppendRequiredCapabilities(v []string) *TaskUpdateOne {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *TaskUpdateOne) ClearRequiredCapabilities() *TaskUpdateOne {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdateOne) SetDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdateOne) AppendDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdateOne) ClearDependsOn() *TaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetOwnedFiles sets the "owned_files" field.
func (_u *TaskUpdateOne) SetOwnedFiles(v []string) *TaskUpdateOne {
	_u.mutation.SetOwnedFiles(v)
	return _u
}

// AppendOwnedFiles appends value to the "owned_files" field.
func (_u *TaskUpdateOne) AppendOwnedFiles(v []string) *TaskUpdateOne {
	_u.mutation.AppendOwnedFiles(v)
	return _u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (_u *TaskUpdateOne) ClearOwnedFiles() *TaskUpdateOne {
	_u.mutation.ClearOwnedFiles()
	return _u
}

// SetSynthesisContext sets the "synthesis_context" field.
func (_u *TaskUpdateOne) SetSynthesisContext(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetSynthesisContext(v)
	return _u
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (_u *TaskUpdateOne) ClearSynthesisContext() *TaskUpdateOne {
	_u.mutation.ClearSynthesisContext()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *TaskUpdateOne) SetSandboxID(v string) *TaskUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSandboxID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *TaskUpdateOne) ClearSandboxID() *TaskUpdateOne {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (_u *TaskUpdateOne) SetClaimedByPod(v string) *TaskUpdateOne {
	_u.mutation.SetClaimedByPod(v)
	return _u
}

// SetNillableClaimedByPod sets the "claimed_by_pod" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClaimedByPod(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetClaimedByPod(*v)
	}
	return _u
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (_u *TaskUpdateOne) ClearClaimedByPod() *TaskUpdateOne {
	_u.mutation.ClearClaimedByPod()
	return _u
}

// SetExecutionConfig sets the "execution_config" field.
func (_u *TaskUpdateOne) SetExecutionConfig(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetExecutionConfig(v)
	return _u
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (_u *TaskUpdateOne) ClearExecutionConfig() *TaskUpdateOne {
	_u.mutation.ClearExecutionConfig()
	return _u
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_u *TaskUpdateOne) SetPersistenceDir(v string) *TaskUpdateOne {
	_u.mutation.SetPersistenceDir(v)
	return _u
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePersistenceDir(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPersistenceDir(*v)
	}
	return _u
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (_u *TaskUpdateOne) ClearPersistenceDir() *TaskUpdateOne {
	_u.mutation.ClearPersistenceDir()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdateOne) SetFailureReason(v string) *TaskUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TaskUpdateOne) SetEmbedding(v []float64) *TaskUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *TaskUpdateOne) AppendEmbedding(v []float64) *TaskUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TaskUpdateOne) ClearEmbedding() *TaskUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdateOne) SetVersion(v int) *TaskUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVersion(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdateOne) AddVersion(v int) *TaskUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaskUpdateOne) SetAssignedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *TaskUpdateOne) ClearAssignedAt() *TaskUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_u *TaskUpdateOne) SetTicket(v *Ticket) *TaskUpdateOne {
	return _u.SetTicketID(v.ID)
}

// AddCostRecordIDs adds the "cost_records" edge to the CostRecord entity by IDs.
func (_u *TaskUpdateOne) AddCostRecordIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCostRecordIDs(ids...)
	return _u
}

// AddCostRecords adds the "cost_records" edges to the CostRecord entity.
func (_u *TaskUpdateOne) AddCostRecords(v ...*CostRecord) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostRecordIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (_u *TaskUpdateOne) ClearTicket() *TaskUpdateOne {
	_u.mutation.ClearTicket()
	return _u
}

// ClearCostRecords clears all "cost_records" edges to the CostRecord entity.
func (_u *TaskUpdateOne) ClearCostRecords() *TaskUpdateOne {
	_u.mutation.ClearCostRecords()
	return _u
}

// RemoveCostRecordIDs removes the "cost_records" edge to CostRecord entities by IDs.
func (_u *TaskUpdateOne) RemoveCostRecordIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCostRecordIDs(ids...)
	return _u
}

// RemoveCostRecords removes "cost_records" edges to CostRecord entities.
func (_u *TaskUpdateOne) RemoveCostRecords(v ...*CostRecord) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostRecordIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityBase(); ok {
		_spec.SetField(task.FieldPriorityBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityBase(); ok {
		_spec.AddField(task.FieldPriorityBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(task.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(task.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(task.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(task.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(task.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOwnedFiles, value)
		})
	}
	if _u.mutation.OwnedFilesCleared() {
		_spec.ClearField(task.FieldOwnedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.SynthesisContext(); ok {
		_spec.SetField(task.FieldSynthesisContext, field.TypeJSON, value)
	}
	if _u.mutation.SynthesisContextCleared() {
		_spec.ClearField(task.FieldSynthesisContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(task.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedByPod(); ok {
		_spec.SetField(task.FieldClaimedByPod, field.TypeString, value)
	}
	if _u.mutation.ClaimedByPodCleared() {
		_spec.ClearField(task.FieldClaimedByPod, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionConfig(); ok {
		_spec.SetField(task.FieldExecutionConfig, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionConfigCleared() {
		_spec.ClearField(task.FieldExecutionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.PersistenceDir(); ok {
		_spec.SetField(task.FieldPersistenceDir, field.TypeString, value)
	}
	if _u.mutation.PersistenceDirCleared() {
		_spec.ClearField(task.FieldPersistenceDir, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(task.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(task.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(task.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.TicketTable,
			Columns: []string{task.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.TicketTable,
			Columns: []string{task.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostRecordsIDs(); len(nodes) > 0 && !_u.mutation.CostRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostRecordsTable,
			Columns: []string{task.CostRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
