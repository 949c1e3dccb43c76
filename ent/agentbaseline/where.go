// Code generated by ent, DO NOT EDIT.

package agentbaseline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldAgentType, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldPhase, v))
}

// LatencyMeanMs applies equality check predicate on the "latency_mean_ms" field. It's identical to LatencyMeanMsEQ.
func LatencyMeanMs(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyMeanMs, v))
}

// LatencyStddevMs applies equality check predicate on the "latency_stddev_ms" field. It's identical to LatencyStddevMsEQ.
func LatencyStddevMs(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyStddevMs, v))
}

// ErrorRate applies equality check predicate on the "error_rate" field. It's identical to ErrorRateEQ.
func ErrorRate(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldErrorRate, v))
}

// CPUMean applies equality check predicate on the "cpu_mean" field. It's identical to CPUMeanEQ.
func CPUMean(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUMean, v))
}

// CPUStddev applies equality check predicate on the "cpu_stddev" field. It's identical to CPUStddevEQ.
func CPUStddev(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUStddev, v))
}

// MemMean applies equality check predicate on the "mem_mean" field. It's identical to MemMeanEQ.
func MemMean(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemMean, v))
}

// MemStddev applies equality check predicate on the "mem_stddev" field. It's identical to MemStddevEQ.
func MemStddev(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemStddev, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldSampleCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContainsFold(FieldAgentType, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldContainsFold(FieldPhase, v))
}

// LatencyMeanMsEQ applies the EQ predicate on the "latency_mean_ms" field.
func LatencyMeanMsEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyMeanMs, v))
}

// LatencyMeanMsNEQ applies the NEQ predicate on the "latency_mean_ms" field.
func LatencyMeanMsNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldLatencyMeanMs, v))
}

// LatencyMeanMsIn applies the In predicate on the "latency_mean_ms" field.
func LatencyMeanMsIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldLatencyMeanMs, vs...))
}

// LatencyMeanMsNotIn applies the NotIn predicate on the "latency_mean_ms" field.
func LatencyMeanMsNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldLatencyMeanMs, vs...))
}

// LatencyMeanMsGT applies the GT predicate on the "latency_mean_ms" field.
func LatencyMeanMsGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldLatencyMeanMs, v))
}

// LatencyMeanMsGTE applies the GTE predicate on the "latency_mean_ms" field.
func LatencyMeanMsGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldLatencyMeanMs, v))
}

// LatencyMeanMsLT applies the LT predicate on the "latency_mean_ms" field.
func LatencyMeanMsLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldLatencyMeanMs, v))
}

// LatencyMeanMsLTE applies the LTE predicate on the "latency_mean_ms" field.
func LatencyMeanMsLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldLatencyMeanMs, v))
}

// LatencyStddevMsEQ applies the EQ predicate on the "latency_stddev_ms" field.
func LatencyStddevMsEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldLatencyStddevMs, v))
}

// LatencyStddevMsNEQ applies the NEQ predicate on the "latency_stddev_ms" field.
func LatencyStddevMsNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldLatencyStddevMs, v))
}

// LatencyStddevMsIn applies the In predicate on the "latency_stddev_ms" field.
func LatencyStddevMsIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldLatencyStddevMs, vs...))
}

// LatencyStddevMsNotIn applies the NotIn predicate on the "latency_stddev_ms" field.
func LatencyStddevMsNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldLatencyStddevMs, vs...))
}

// LatencyStddevMsGT applies the GT predicate on the "latency_stddev_ms" field.
func LatencyStddevMsGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldLatencyStddevMs, v))
}

// LatencyStddevMsGTE applies the GTE predicate on the "latency_stddev_ms" field.
func LatencyStddevMsGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldLatencyStddevMs, v))
}

// LatencyStddevMsLT applies the LT predicate on the "latency_stddev_ms" field.
func LatencyStddevMsLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldLatencyStddevMs, v))
}

// LatencyStddevMsLTE applies the LTE predicate on the "latency_stddev_ms" field.
func LatencyStddevMsLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldLatencyStddevMs, v))
}

// ErrorRateEQ applies the EQ predicate on the "error_rate" field.
func ErrorRateEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldErrorRate, v))
}

// ErrorRateNEQ applies the NEQ predicate on the "error_rate" field.
func ErrorRateNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldErrorRate, v))
}

// ErrorRateIn applies the In predicate on the "error_rate" field.
func ErrorRateIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldErrorRate, vs...))
}

// ErrorRateNotIn applies the NotIn predicate on the "error_rate" field.
func ErrorRateNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldErrorRate, vs...))
}

// ErrorRateGT applies the GT predicate on the "error_rate" field.
func ErrorRateGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldErrorRate, v))
}

// ErrorRateGTE applies the GTE predicate on the "error_rate" field.
func ErrorRateGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldErrorRate, v))
}

// ErrorRateLT applies the LT predicate on the "error_rate" field.
func ErrorRateLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldErrorRate, v))
}

// ErrorRateLTE applies the LTE predicate on the "error_rate" field.
func ErrorRateLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldErrorRate, v))
}

// CPUMeanEQ applies the EQ predicate on the "cpu_mean" field.
func CPUMeanEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUMean, v))
}

// CPUMeanNEQ applies the NEQ predicate on the "cpu_mean" field.
func CPUMeanNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldCPUMean, v))
}

// CPUMeanIn applies the In predicate on the "cpu_mean" field.
func CPUMeanIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldCPUMean, vs...))
}

// CPUMeanNotIn applies the NotIn predicate on the "cpu_mean" field.
func CPUMeanNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldCPUMean, vs...))
}

// CPUMeanGT applies the GT predicate on the "cpu_mean" field.
func CPUMeanGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldCPUMean, v))
}

// CPUMeanGTE applies the GTE predicate on the "cpu_mean" field.
func CPUMeanGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldCPUMean, v))
}

// CPUMeanLT applies the LT predicate on the "cpu_mean" field.
func CPUMeanLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldCPUMean, v))
}

// CPUMeanLTE applies the LTE predicate on the "cpu_mean" field.
func CPUMeanLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldCPUMean, v))
}

// CPUStddevEQ applies the EQ predicate on the "cpu_stddev" field.
func CPUStddevEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldCPUStddev, v))
}

// CPUStddevNEQ applies the NEQ predicate on the "cpu_stddev" field.
func CPUStddevNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldCPUStddev, v))
}

// CPUStddevIn applies the In predicate on the "cpu_stddev" field.
func CPUStddevIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldCPUStddev, vs...))
}

// CPUStddevNotIn applies the NotIn predicate on the "cpu_stddev" field.
func CPUStddevNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldCPUStddev, vs...))
}

// CPUStddevGT applies the GT predicate on the "cpu_stddev" field.
func CPUStddevGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldCPUStddev, v))
}

// CPUStddevGTE applies the GTE predicate on the "cpu_stddev" field.
func CPUStddevGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldCPUStddev, v))
}

// CPUStddevLT applies the LT predicate on the "cpu_stddev" field.
func CPUStddevLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldCPUStddev, v))
}

// CPUStddevLTE applies the LTE predicate on the "cpu_stddev" field.
func CPUStddevLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldCPUStddev, v))
}

// MemMeanEQ applies the EQ predicate on the "mem_mean" field.
func MemMeanEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemMean, v))
}

// MemMeanNEQ applies the NEQ predicate on the "mem_mean" field.
func MemMeanNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldMemMean, v))
}

// MemMeanIn applies the In predicate on the "mem_mean" field.
func MemMeanIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldMemMean, vs...))
}

// MemMeanNotIn applies the NotIn predicate on the "mem_mean" field.
func MemMeanNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldMemMean, vs...))
}

// MemMeanGT applies the GT predicate on the "mem_mean" field.
func MemMeanGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldMemMean, v))
}

// MemMeanGTE applies the GTE predicate on the "mem_mean" field.
func MemMeanGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldMemMean, v))
}

// MemMeanLT applies the LT predicate on the "mem_mean" field.
func MemMeanLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldMemMean, v))
}

// MemMeanLTE applies the LTE predicate on the "mem_mean" field.
func MemMeanLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldMemMean, v))
}

// MemStddevEQ applies the EQ predicate on the "mem_stddev" field.
func MemStddevEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldMemStddev, v))
}

// MemStddevNEQ applies the NEQ predicate on the "mem_stddev" field.
func MemStddevNEQ(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldMemStddev, v))
}

// MemStddevIn applies the In predicate on the "mem_stddev" field.
func MemStddevIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldMemStddev, vs...))
}

// MemStddevNotIn applies the NotIn predicate on the "mem_stddev" field.
func MemStddevNotIn(vs ...float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldMemStddev, vs...))
}

// MemStddevGT applies the GT predicate on the "mem_stddev" field.
func MemStddevGT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldMemStddev, v))
}

// MemStddevGTE applies the GTE predicate on the "mem_stddev" field.
func MemStddevGTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldMemStddev, v))
}

// MemStddevLT applies the LT predicate on the "mem_stddev" field.
func MemStddevLT(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldMemStddev, v))
}

// MemStddevLTE applies the LTE predicate on the "mem_stddev" field.
func MemStddevLTE(v float64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldMemStddev, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int64) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldSampleCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentBaseline) predicate.AgentBaseline {
	return predicate.AgentBaseline(sql.NotPredicates(p))
}
