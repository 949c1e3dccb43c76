// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *TaskCreate) SetTicketID(v string) *TaskCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTicketID(v *string) *TaskCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriorityBase sets the "priority_base" field.
func (_c *TaskCreate) SetPriorityBase(v int) *TaskCreate {
	_c.mutation.SetPriorityBase(v)
	return _c
}

// SetNillablePriorityBase sets the "priority_base" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriorityBase(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriorityBase(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TaskCreate) SetScore(v float64) *TaskCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TaskCreate) SetNillableScore(v *float64) *TaskCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *TaskCreate) SetDeadline(v time.Time) *TaskCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeadline(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskCreate) SetRetryCount(v int) *TaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TaskCreate) SetMaxRetries(v int) *TaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRetries(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *TaskCreate) SetTimeoutSeconds(v int) *TaskCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTimeoutSeconds(v *int) *TaskCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_c *TaskCreate) SetRequiredCapabilities(v []string) *TaskCreate {
	_c.mutation.SetRequiredCapabilities(v)
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *TaskCreate) SetDependsOn(v []string) *TaskCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v string) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetOwnedFiles sets the "owned_files" field.
func (_c *TaskCreate) SetOwnedFiles(v []string) *TaskCreate {
	_c.mutation.SetOwnedFiles(v)
	return _c
}

// SetSynthesisContext sets the "synthesis_context" field.
func (_c *TaskCreate) SetSynthesisContext(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetSynthesisContext(v)
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *TaskCreate) SetSandboxID(v string) *TaskCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSandboxID(v *string) *TaskCreate {
	if v != nil {
		_c.SetSandboxID(*v)
	}
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *TaskCreate) SetAssignedAgentID(v string) *TaskCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAgentID(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (_c *TaskCreate) SetClaimedByPod(v string) *TaskCreate {
	_c.mutation.SetClaimedByPod(v)
	return _c
}

// SetNillableClaimedByPod sets the "claimed_by_pod" field if the given value is not nil.
func (_c *TaskCreate) SetNillableClaimedByPod(v *string) *TaskCreate {
	if v != nil {
		_c.SetClaimedByPod(*v)
	}
	return _c
}

// SetExecutionConfig sets the "execution_config" field.
func (_c *TaskCreate) SetExecutionConfig(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetExecutionConfig(v)
	return _c
}

// SetPersistenceDir sets the "persistence_dir" field.
func (_c *TaskCreate) SetPersistenceDir(v string) *TaskCreate {
	_c.mutation.SetPersistenceDir(v)
	return _c
}

// SetNillablePersistenceDir sets the "persistence_dir" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePersistenceDir(v *string) *TaskCreate {
	if v != nil {
		_c.SetPersistenceDir(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *TaskCreate) SetFailureReason(v string) *TaskCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFailureReason(v *string) *TaskCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *TaskCreate) SetEmbedding(v []float64) *TaskCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *TaskCreate) SetVersion(v int) *TaskCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TaskCreate) SetNillableVersion(v *int) *TaskCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *TaskCreate) SetAssignedAt(v time.Time) *TaskCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *TaskCreate) SetTicket(v *Ticket) *TaskCreate {
	return _c.SetTicketID(v.ID)
}

// AddCostRecordIDs adds the "cost_records" edge to the CostRecord entity by IDs.
func (_c *TaskCreate) AddCostRecordIDs(ids ...string) *TaskCreate {
	_c.mutation.AddCostRecordIDs(ids...)
	return _c
}

// AddCostRecords adds the "cost_records" edges to the CostRecord entity.
func (_c *TaskCreate) AddCostRecords(v ...*CostRecord) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCostRecordIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PriorityBase(); !ok {
		v := task.DefaultPriorityBase
		_c.mutation.SetPriorityBase(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := task.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := task.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := task.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := task.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := task.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityBase(); !ok {
		return &ValidationError{Name: "priority_base", err: errors.New(`ent: missing required field "Task.priority_base"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Task.score"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Task.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Task.max_retries"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "Task.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Task.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PriorityBase(); ok {
		_spec.SetField(task.FieldPriorityBase, field.TypeInt, value)
		_node.PriorityBase = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(task.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.RequiredCapabilities(); ok {
		_spec.SetField(task.FieldRequiredCapabilities, field.TypeJSON, value)
		_node.RequiredCapabilities = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
		_node.OwnedFiles = value
	}
	if value, ok := _c.mutation.SynthesisContext(); ok {
		_spec.SetField(task.FieldSynthesisContext, field.TypeJSON, value)
		_node.SynthesisContext = value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = &value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = &value
	}
	if value, ok := _c.mutation.ClaimedByPod(); ok {
		_spec.SetField(task.FieldClaimedByPod, field.TypeString, value)
		_node.ClaimedByPod = &value
	}
	if value, ok := _c.mutation.ExecutionConfig(); ok {
		_spec.SetField(task.FieldExecutionConfig, field.TypeJSON, value)
		_node.ExecutionConfig = value
	}
	if value, ok := _c.mutation.PersistenceDir(); ok {
		_spec.SetField(task.FieldPersistenceDir, field.TypeString, value)
		_node.PersistenceDir = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(task.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
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
		_node.TicketID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CostRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTicketID sets the "ticket_id" field.
func (u *TaskUpsert) SetTicketID(v string) *TaskUpsert {
	u.Set(task.FieldTicketID, v)
	return u
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTicketID() *TaskUpsert {
	u.SetExcluded(task.FieldTicketID)
	return u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *TaskUpsert) ClearTicketID() *TaskUpsert {
	u.SetNull(task.FieldTicketID)
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetPriorityBase sets the "priority_base" field.
func (u *TaskUpsert) SetPriorityBase(v int) *TaskUpsert {
	u.Set(task.FieldPriorityBase, v)
	return u
}

// UpdatePriorityBase sets the "priority_base" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriorityBase() *TaskUpsert {
	u.SetExcluded(task.FieldPriorityBase)
	return u
}

// AddPriorityBase adds v to the "priority_base" field.
func (u *TaskUpsert) AddPriorityBase(v int) *TaskUpsert {
	u.Add(task.FieldPriorityBase, v)
	return u
}

// SetScore sets the "score" field.
func (u *TaskUpsert) SetScore(v float64) *TaskUpsert {
	u.Set(task.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScore() *TaskUpsert {
	u.SetExcluded(task.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *TaskUpsert) AddScore(v float64) *TaskUpsert {
	u.Add(task.FieldScore, v)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *TaskUpsert) SetDeadline(v time.Time) *TaskUpsert {
	u.Set(task.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDeadline() *TaskUpsert {
	u.SetExcluded(task.FieldDeadline)
	return u
}

// ClearDeadline clears the value of the "deadline" field.
func (u *TaskUpsert) ClearDeadline() *TaskUpsert {
	u.SetNull(task.FieldDeadline)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsert) SetRetryCount(v int) *TaskUpsert {
	u.Set(task.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRetryCount() *TaskUpsert {
	u.SetExcluded(task.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsert) AddRetryCount(v int) *TaskUpsert {
	u.Add(task.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsert) SetMaxRetries(v int) *TaskUpsert {
	u.Set(task.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxRetries() *TaskUpsert {
	u.SetExcluded(task.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsert) AddMaxRetries(v int) *TaskUpsert {
	u.Add(task.FieldMaxRetries, v)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *TaskUpsert) SetTimeoutSeconds(v int) *TaskUpsert {
	u.Set(task.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTimeoutSeconds() *TaskUpsert {
	u.SetExcluded(task.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *TaskUpsert) AddTimeoutSeconds(v int) *TaskUpsert {
	u.Add(task.FieldTimeoutSeconds, v)
	return u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *TaskUpsert) SetRequiredCapabilities(v []string) *TaskUpsert {
	u.Set(task.FieldRequiredCapabilities, v)
	return u
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRequiredCapabilities() *TaskUpsert {
	u.SetExcluded(task.FieldRequiredCapabilities)
	return u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (u *TaskUpsert) ClearRequiredCapabilities() *TaskUpsert {
	u.SetNull(task.FieldRequiredCapabilities)
	return u
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsert) SetDependsOn(v []string) *TaskUpsert {
	u.Set(task.FieldDependsOn, v)
	return u
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDependsOn() *TaskUpsert {
	u.SetExcluded(task.FieldDependsOn)
	return u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsert) ClearDependsOn() *TaskUpsert {
	u.SetNull(task.FieldDependsOn)
	return u
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsert) SetParentTaskID(v string) *TaskUpsert {
	u.Set(task.FieldParentTaskID, v)
	return u
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateParentTaskID() *TaskUpsert {
	u.SetExcluded(task.FieldParentTaskID)
	return u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsert) ClearParentTaskID() *TaskUpsert {
	u.SetNull(task.FieldParentTaskID)
	return u
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsert) SetOwnedFiles(v []string) *TaskUpsert {
	u.Set(task.FieldOwnedFiles, v)
	return u
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOwnedFiles() *TaskUpsert {
	u.SetExcluded(task.FieldOwnedFiles)
	return u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsert) ClearOwnedFiles() *TaskUpsert {
	u.SetNull(task.FieldOwnedFiles)
	return u
}

// SetSynthesisContext sets the "synthesis_context" field.
func (u *TaskUpsert) SetSynthesisContext(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldSynthesisContext, v)
	return u
}

// UpdateSynthesisContext sets the "synthesis_context" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSynthesisContext() *TaskUpsert {
	u.SetExcluded(task.FieldSynthesisContext)
	return u
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (u *TaskUpsert) ClearSynthesisContext() *TaskUpsert {
	u.SetNull(task.FieldSynthesisContext)
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsert) SetSandboxID(v string) *TaskUpsert {
	u.Set(task.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSandboxID() *TaskUpsert {
	u.SetExcluded(task.FieldSandboxID)
	return u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsert) ClearSandboxID() *TaskUpsert {
	u.SetNull(task.FieldSandboxID)
	return u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsert) SetAssignedAgentID(v string) *TaskUpsert {
	u.Set(task.FieldAssignedAgentID, v)
	return u
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAgentID() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAgentID)
	return u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsert) ClearAssignedAgentID() *TaskUpsert {
	u.SetNull(task.FieldAssignedAgentID)
	return u
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (u *TaskUpsert) SetClaimedByPod(v string) *TaskUpsert {
	u.Set(task.FieldClaimedByPod, v)
	return u
}

// UpdateClaimedByPod sets the "claimed_by_pod" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClaimedByPod() *TaskUpsert {
	u.SetExcluded(task.FieldClaimedByPod)
	return u
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (u *TaskUpsert) ClearClaimedByPod() *TaskUpsert {
	u.SetNull(task.FieldClaimedByPod)
	return u
}

// SetExecutionConfig sets the "execution_config" field.
func (u *TaskUpsert) SetExecutionConfig(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldExecutionConfig, v)
	return u
}

// UpdateExecutionConfig sets the "execution_config" field to the value that was provided on create.
func (u *TaskUpsert) UpdateExecutionConfig() *TaskUpsert {
	u.SetExcluded(task.FieldExecutionConfig)
	return u
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (u *TaskUpsert) ClearExecutionConfig() *TaskUpsert {
	u.SetNull(task.FieldExecutionConfig)
	return u
}

// SetPersistenceDir sets the "persistence_dir" field.
func (u *TaskUpsert) SetPersistenceDir(v string) *TaskUpsert {
	u.Set(task.FieldPersistenceDir, v)
	return u
}

// UpdatePersistenceDir sets the "persistence_dir" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePersistenceDir() *TaskUpsert {
	u.SetExcluded(task.FieldPersistenceDir)
	return u
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (u *TaskUpsert) ClearPersistenceDir() *TaskUpsert {
	u.SetNull(task.FieldPersistenceDir)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsert) SetFailureReason(v string) *TaskUpsert {
	u.Set(task.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFailureReason() *TaskUpsert {
	u.SetExcluded(task.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsert) ClearFailureReason() *TaskUpsert {
	u.SetNull(task.FieldFailureReason)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *TaskUpsert) SetEmbedding(v []float64) *TaskUpsert {
	u.Set(task.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEmbedding() *TaskUpsert {
	u.SetExcluded(task.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TaskUpsert) ClearEmbedding() *TaskUpsert {
	u.SetNull(task.FieldEmbedding)
	return u
}

// SetVersion sets the "version" field.
func (u *TaskUpsert) SetVersion(v int) *TaskUpsert {
	u.Set(task.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TaskUpsert) UpdateVersion() *TaskUpsert {
	u.SetExcluded(task.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *TaskUpsert) AddVersion(v int) *TaskUpsert {
	u.Add(task.FieldVersion, v)
	return u
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsert) SetAssignedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldAssignedAt, v)
	return u
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAt() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAt)
	return u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsert) ClearAssignedAt() *TaskUpsert {
	u.SetNull(task.FieldAssignedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsert) SetLastHeartbeatAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastHeartbeatAt() *TaskUpsert {
	u.SetExcluded(task.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsert) ClearLastHeartbeatAt() *TaskUpsert {
	u.SetNull(task.FieldLastHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTicketID sets the "ticket_id" field.
func (u *TaskUpsertOne) SetTicketID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTicketID(v)
	})
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTicketID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTicketID()
	})
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *TaskUpsertOne) ClearTicketID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTicketID()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriorityBase sets the "priority_base" field.
func (u *TaskUpsertOne) SetPriorityBase(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriorityBase(v)
	})
}

// AddPriorityBase adds v to the "priority_base" field.
func (u *TaskUpsertOne) AddPriorityBase(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriorityBase(v)
	})
}

// UpdatePriorityBase sets the "priority_base" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriorityBase() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriorityBase()
	})
}

// SetScore sets the "score" field.
func (u *TaskUpsertOne) SetScore(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TaskUpsertOne) AddScore(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScore() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScore()
	})
}

// SetDeadline sets the "deadline" field.
func (u *TaskUpsertOne) SetDeadline(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDeadline() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *TaskUpsertOne) ClearDeadline() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeadline()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertOne) SetRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertOne) AddRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRetryCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertOne) SetMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertOne) AddMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxRetries() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *TaskUpsertOne) SetTimeoutSeconds(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *TaskUpsertOne) AddTimeoutSeconds(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTimeoutSeconds() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *TaskUpsertOne) SetRequiredCapabilities(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequiredCapabilities(v)
	})
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRequiredCapabilities() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequiredCapabilities()
	})
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (u *TaskUpsertOne) ClearRequiredCapabilities() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequiredCapabilities()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertOne) SetDependsOn(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDependsOn() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsertOne) ClearDependsOn() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependsOn()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertOne) SetParentTaskID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertOne) ClearParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsertOne) SetOwnedFiles(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnedFiles(v)
	})
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOwnedFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnedFiles()
	})
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsertOne) ClearOwnedFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnedFiles()
	})
}

// SetSynthesisContext sets the "synthesis_context" field.
func (u *TaskUpsertOne) SetSynthesisContext(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSynthesisContext(v)
	})
}

// UpdateSynthesisContext sets the "synthesis_context" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSynthesisContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSynthesisContext()
	})
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (u *TaskUpsertOne) ClearSynthesisContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSynthesisContext()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsertOne) SetSandboxID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSandboxID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsertOne) ClearSandboxID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSandboxID()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsertOne) SetAssignedAgentID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsertOne) ClearAssignedAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (u *TaskUpsertOne) SetClaimedByPod(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedByPod(v)
	})
}

// UpdateClaimedByPod sets the "claimed_by_pod" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClaimedByPod() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedByPod()
	})
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (u *TaskUpsertOne) ClearClaimedByPod() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedByPod()
	})
}

// SetExecutionConfig sets the "execution_config" field.
func (u *TaskUpsertOne) SetExecutionConfig(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionConfig(v)
	})
}

// UpdateExecutionConfig sets the "execution_config" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateExecutionConfig() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionConfig()
	})
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (u *TaskUpsertOne) ClearExecutionConfig() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionConfig()
	})
}

// SetPersistenceDir sets the "persistence_dir" field.
func (u *TaskUpsertOne) SetPersistenceDir(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPersistenceDir(v)
	})
}

// UpdatePersistenceDir sets the "persistence_dir" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePersistenceDir() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePersistenceDir()
	})
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (u *TaskUpsertOne) ClearPersistenceDir() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPersistenceDir()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsertOne) SetFailureReason(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFailureReason() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsertOne) ClearFailureReason() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFailureReason()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TaskUpsertOne) SetEmbedding(v []float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEmbedding() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TaskUpsertOne) ClearEmbedding() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEmbedding()
	})
}

// SetVersion sets the "version" field.
func (u *TaskUpsertOne) SetVersion(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TaskUpsertOne) AddVersion(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateVersion() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateVersion()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsertOne) SetAssignedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAt()
	})
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsertOne) ClearAssignedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertOne) SetLastHeartbeatAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertOne) ClearLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTicketID sets the "ticket_id" field.
func (u *TaskUpsertBulk) SetTicketID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTicketID(v)
	})
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTicketID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTicketID()
	})
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *TaskUpsertBulk) ClearTicketID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTicketID()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriorityBase sets the "priority_base" field.
func (u *TaskUpsertBulk) SetPriorityBase(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriorityBase(v)
	})
}

// AddPriorityBase adds v to the "priority_base" field.
func (u *TaskUpsertBulk) AddPriorityBase(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriorityBase(v)
	})
}

// UpdatePriorityBase sets the "priority_base" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriorityBase() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriorityBase()
	})
}

// SetScore sets the "score" field.
func (u *TaskUpsertBulk) SetScore(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TaskUpsertBulk) AddScore(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScore() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScore()
	})
}

// SetDeadline sets the "deadline" field.
func (u *TaskUpsertBulk) SetDeadline(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDeadline() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *TaskUpsertBulk) ClearDeadline() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeadline()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertBulk) SetRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertBulk) AddRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRetryCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertBulk) SetMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertBulk) AddMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxRetries() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *TaskUpsertBulk) SetTimeoutSeconds(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *TaskUpsertBulk) AddTimeoutSeconds(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTimeoutSeconds() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *TaskUpsertBulk) SetRequiredCapabilities(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRequiredCapabilities(v)
	})
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRequiredCapabilities() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRequiredCapabilities()
	})
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (u *TaskUpsertBulk) ClearRequiredCapabilities() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRequiredCapabilities()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *TaskUpsertBulk) SetDependsOn(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDependsOn() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *TaskUpsertBulk) ClearDependsOn() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependsOn()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertBulk) SetParentTaskID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertBulk) ClearParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsertBulk) SetOwnedFiles(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnedFiles(v)
	})
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOwnedFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnedFiles()
	})
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsertBulk) ClearOwnedFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnedFiles()
	})
}

// SetSynthesisContext sets the "synthesis_context" field.
func (u *TaskUpsertBulk) SetSynthesisContext(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSynthesisContext(v)
	})
}

// UpdateSynthesisContext sets the "synthesis_context" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSynthesisContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSynthesisContext()
	})
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (u *TaskUpsertBulk) ClearSynthesisContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSynthesisContext()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsertBulk) SetSandboxID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSandboxID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsertBulk) ClearSandboxID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSandboxID()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsertBulk) SetAssignedAgentID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsertBulk) ClearAssignedAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (u *TaskUpsertBulk) SetClaimedByPod(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedByPod(v)
	})
}

// UpdateClaimedByPod sets the "claimed_by_pod" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClaimedByPod() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedByPod()
	})
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (u *TaskUpsertBulk) ClearClaimedByPod() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedByPod()
	})
}

// SetExecutionConfig sets the "execution_config" field.
func (u *TaskUpsertBulk) SetExecutionConfig(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionConfig(v)
	})
}

// UpdateExecutionConfig sets the "execution_config" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateExecutionConfig() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionConfig()
	})
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (u *TaskUpsertBulk) ClearExecutionConfig() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionConfig()
	})
}

// SetPersistenceDir sets the "persistence_dir" field.
func (u *TaskUpsertBulk) SetPersistenceDir(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPersistenceDir(v)
	})
}

// UpdatePersistenceDir sets the "persistence_dir" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePersistenceDir() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePersistenceDir()
	})
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (u *TaskUpsertBulk) ClearPersistenceDir() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPersistenceDir()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *TaskUpsertBulk) SetFailureReason(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFailureReason() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *TaskUpsertBulk) ClearFailureReason() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFailureReason()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TaskUpsertBulk) SetEmbedding(v []float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEmbedding() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TaskUpsertBulk) ClearEmbedding() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEmbedding()
	})
}

// SetVersion sets the "version" field.
func (u *TaskUpsertBulk) SetVersion(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *TaskUpsertBulk) AddVersion(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateVersion() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateVersion()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsertBulk) SetAssignedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAt()
	})
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsertBulk) ClearAssignedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) SetLastHeartbeatAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) ClearLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
