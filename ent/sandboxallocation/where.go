// Code generated by ent, DO NOT EDIT.

package sandboxallocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldContainsFold(FieldID, id))
}

// CPUCores applies equality check predicate on the "cpu_cores" field. It's identical to CPUCoresEQ.
func CPUCores(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldCPUCores, v))
}

// MemoryMB applies equality check predicate on the "memory_mb" field. It's identical to MemoryMBEQ.
func MemoryMB(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldMemoryMB, v))
}

// DiskMB applies equality check predicate on the "disk_mb" field. It's identical to DiskMBEQ.
func DiskMB(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldDiskMB, v))
}

// PendingCPUCores applies equality check predicate on the "pending_cpu_cores" field. It's identical to PendingCPUCoresEQ.
func PendingCPUCores(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingCPUCores, v))
}

// PendingMemoryMB applies equality check predicate on the "pending_memory_mb" field. It's identical to PendingMemoryMBEQ.
func PendingMemoryMB(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingMemoryMB, v))
}

// PendingDiskMB applies equality check predicate on the "pending_disk_mb" field. It's identical to PendingDiskMBEQ.
func PendingDiskMB(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingDiskMB, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldVersion, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// CPUCoresEQ applies the EQ predicate on the "cpu_cores" field.
func CPUCoresEQ(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldCPUCores, v))
}

// CPUCoresNEQ applies the NEQ predicate on the "cpu_cores" field.
func CPUCoresNEQ(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldCPUCores, v))
}

// CPUCoresIn applies the In predicate on the "cpu_cores" field.
func CPUCoresIn(vs ...float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldCPUCores, vs...))
}

// CPUCoresNotIn applies the NotIn predicate on the "cpu_cores" field.
func CPUCoresNotIn(vs ...float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldCPUCores, vs...))
}

// CPUCoresGT applies the GT predicate on the "cpu_cores" field.
func CPUCoresGT(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldCPUCores, v))
}

// CPUCoresGTE applies the GTE predicate on the "cpu_cores" field.
func CPUCoresGTE(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldCPUCores, v))
}

// CPUCoresLT applies the LT predicate on the "cpu_cores" field.
func CPUCoresLT(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldCPUCores, v))
}

// CPUCoresLTE applies the LTE predicate on the "cpu_cores" field.
func CPUCoresLTE(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldCPUCores, v))
}

// MemoryMBEQ applies the EQ predicate on the "memory_mb" field.
func MemoryMBEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldMemoryMB, v))
}

// MemoryMBNEQ applies the NEQ predicate on the "memory_mb" field.
func MemoryMBNEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldMemoryMB, v))
}

// MemoryMBIn applies the In predicate on the "memory_mb" field.
func MemoryMBIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldMemoryMB, vs...))
}

// MemoryMBNotIn applies the NotIn predicate on the "memory_mb" field.
func MemoryMBNotIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldMemoryMB, vs...))
}

// MemoryMBGT applies the GT predicate on the "memory_mb" field.
func MemoryMBGT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldMemoryMB, v))
}

// MemoryMBGTE applies the GTE predicate on the "memory_mb" field.
func MemoryMBGTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldMemoryMB, v))
}

// MemoryMBLT applies the LT predicate on the "memory_mb" field.
func MemoryMBLT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldMemoryMB, v))
}

// MemoryMBLTE applies the LTE predicate on the "memory_mb" field.
func MemoryMBLTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldMemoryMB, v))
}

// DiskMBEQ applies the EQ predicate on the "disk_mb" field.
func DiskMBEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldDiskMB, v))
}

// DiskMBNEQ applies the NEQ predicate on the "disk_mb" field.
func DiskMBNEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldDiskMB, v))
}

// DiskMBIn applies the In predicate on the "disk_mb" field.
func DiskMBIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldDiskMB, vs...))
}

// DiskMBNotIn applies the NotIn predicate on the "disk_mb" field.
func DiskMBNotIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldDiskMB, vs...))
}

// DiskMBGT applies the GT predicate on the "disk_mb" field.
func DiskMBGT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldDiskMB, v))
}

// DiskMBGTE applies the GTE predicate on the "disk_mb" field.
func DiskMBGTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldDiskMB, v))
}

// DiskMBLT applies the LT predicate on the "disk_mb" field.
func DiskMBLT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldDiskMB, v))
}

// DiskMBLTE applies the LTE predicate on the "disk_mb" field.
func DiskMBLTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldDiskMB, v))
}

// PendingCPUCoresEQ applies the EQ predicate on the "pending_cpu_cores" field.
func PendingCPUCoresEQ(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingCPUCores, v))
}

// PendingCPUCoresNEQ applies the NEQ predicate on the "pending_cpu_cores" field.
func PendingCPUCoresNEQ(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldPendingCPUCores, v))
}

// PendingCPUCoresIn applies the In predicate on the "pending_cpu_cores" field.
func PendingCPUCoresIn(vs ...float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldPendingCPUCores, vs...))
}

// PendingCPUCoresNotIn applies the NotIn predicate on the "pending_cpu_cores" field.
func PendingCPUCoresNotIn(vs ...float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldPendingCPUCores, vs...))
}

// PendingCPUCoresGT applies the GT predicate on the "pending_cpu_cores" field.
func PendingCPUCoresGT(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldPendingCPUCores, v))
}

// PendingCPUCoresGTE applies the GTE predicate on the "pending_cpu_cores" field.
func PendingCPUCoresGTE(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldPendingCPUCores, v))
}

// PendingCPUCoresLT applies the LT predicate on the "pending_cpu_cores" field.
func PendingCPUCoresLT(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldPendingCPUCores, v))
}

// PendingCPUCoresLTE applies the LTE predicate on the "pending_cpu_cores" field.
func PendingCPUCoresLTE(v float64) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldPendingCPUCores, v))
}

// PendingCPUCoresIsNil applies the IsNil predicate on the "pending_cpu_cores" field.
func PendingCPUCoresIsNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIsNull(FieldPendingCPUCores))
}

// PendingCPUCoresNotNil applies the NotNil predicate on the "pending_cpu_cores" field.
func PendingCPUCoresNotNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotNull(FieldPendingCPUCores))
}

// PendingMemoryMBEQ applies the EQ predicate on the "pending_memory_mb" field.
func PendingMemoryMBEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingMemoryMB, v))
}

// PendingMemoryMBNEQ applies the NEQ predicate on the "pending_memory_mb" field.
func PendingMemoryMBNEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldPendingMemoryMB, v))
}

// PendingMemoryMBIn applies the In predicate on the "pending_memory_mb" field.
func PendingMemoryMBIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldPendingMemoryMB, vs...))
}

// PendingMemoryMBNotIn applies the NotIn predicate on the "pending_memory_mb" field.
func PendingMemoryMBNotIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldPendingMemoryMB, vs...))
}

// PendingMemoryMBGT applies the GT predicate on the "pending_memory_mb" field.
func PendingMemoryMBGT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldPendingMemoryMB, v))
}

// PendingMemoryMBGTE applies the GTE predicate on the "pending_memory_mb" field.
func PendingMemoryMBGTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldPendingMemoryMB, v))
}

// PendingMemoryMBLT applies the LT predicate on the "pending_memory_mb" field.
func PendingMemoryMBLT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldPendingMemoryMB, v))
}

// PendingMemoryMBLTE applies the LTE predicate on the "pending_memory_mb" field.
func PendingMemoryMBLTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldPendingMemoryMB, v))
}

// PendingMemoryMBIsNil applies the IsNil predicate on the "pending_memory_mb" field.
func PendingMemoryMBIsNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIsNull(FieldPendingMemoryMB))
}

// PendingMemoryMBNotNil applies the NotNil predicate on the "pending_memory_mb" field.
func PendingMemoryMBNotNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotNull(FieldPendingMemoryMB))
}

// PendingDiskMBEQ applies the EQ predicate on the "pending_disk_mb" field.
func PendingDiskMBEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldPendingDiskMB, v))
}

// PendingDiskMBNEQ applies the NEQ predicate on the "pending_disk_mb" field.
func PendingDiskMBNEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldPendingDiskMB, v))
}

// PendingDiskMBIn applies the In predicate on the "pending_disk_mb" field.
func PendingDiskMBIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldPendingDiskMB, vs...))
}

// PendingDiskMBNotIn applies the NotIn predicate on the "pending_disk_mb" field.
func PendingDiskMBNotIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldPendingDiskMB, vs...))
}

// PendingDiskMBGT applies the GT predicate on the "pending_disk_mb" field.
func PendingDiskMBGT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldPendingDiskMB, v))
}

// PendingDiskMBGTE applies the GTE predicate on the "pending_disk_mb" field.
func PendingDiskMBGTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldPendingDiskMB, v))
}

// PendingDiskMBLT applies the LT predicate on the "pending_disk_mb" field.
func PendingDiskMBLT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldPendingDiskMB, v))
}

// PendingDiskMBLTE applies the LTE predicate on the "pending_disk_mb" field.
func PendingDiskMBLTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldPendingDiskMB, v))
}

// PendingDiskMBIsNil applies the IsNil predicate on the "pending_disk_mb" field.
func PendingDiskMBIsNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIsNull(FieldPendingDiskMB))
}

// PendingDiskMBNotNil applies the NotNil predicate on the "pending_disk_mb" field.
func PendingDiskMBNotNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotNull(FieldPendingDiskMB))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldVersion, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxAllocation) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxAllocation) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxAllocation) predicate.SandboxAllocation {
	return predicate.SandboxAllocation(sql.NotPredicates(p))
}
