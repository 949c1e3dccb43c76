// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
	"github.com/helmsman-ai/helmsman/ent/schema"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCapacity is the schema descriptor for capacity field.
	agentDescCapacity := agentFields[5].Descriptor()
	// agent.DefaultCapacity holds the default value on creation for the capacity field.
	agent.DefaultCapacity = agentDescCapacity.Default.(int)
	// agentDescAnomalyScore is the schema descriptor for anomaly_score field.
	agentDescAnomalyScore := agentFields[7].Descriptor()
	// agent.DefaultAnomalyScore holds the default value on creation for the anomaly_score field.
	agent.DefaultAnomalyScore = agentDescAnomalyScore.Default.(float64)
	// agentDescConsecutiveAnomalousReadings is the schema descriptor for consecutive_anomalous_readings field.
	agentDescConsecutiveAnomalousReadings := agentFields[8].Descriptor()
	// agent.DefaultConsecutiveAnomalousReadings holds the default value on creation for the consecutive_anomalous_readings field.
	agent.DefaultConsecutiveAnomalousReadings = agentDescConsecutiveAnomalousReadings.Default.(int)
	// agentDescSequenceNumber is the schema descriptor for sequence_number field.
	agentDescSequenceNumber := agentFields[9].Descriptor()
	// agent.DefaultSequenceNumber holds the default value on creation for the sequence_number field.
	agent.DefaultSequenceNumber = agentDescSequenceNumber.Default.(int64)
	// agentDescConsecutiveMissedHeartbeats is the schema descriptor for consecutive_missed_heartbeats field.
	agentDescConsecutiveMissedHeartbeats := agentFields[10].Descriptor()
	// agent.DefaultConsecutiveMissedHeartbeats holds the default value on creation for the consecutive_missed_heartbeats field.
	agent.DefaultConsecutiveMissedHeartbeats = agentDescConsecutiveMissedHeartbeats.Default.(int)
	// agentDescCorruptHeartbeats is the schema descriptor for corrupt_heartbeats field.
	agentDescCorruptHeartbeats := agentFields[11].Descriptor()
	// agent.DefaultCorruptHeartbeats holds the default value on creation for the corrupt_heartbeats field.
	agent.DefaultCorruptHeartbeats = agentDescCorruptHeartbeats.Default.(int)
	// agentDescKeptAliveForValidation is the schema descriptor for kept_alive_for_validation field.
	agentDescKeptAliveForValidation := agentFields[16].Descriptor()
	// agent.DefaultKeptAliveForValidation holds the default value on creation for the kept_alive_for_validation field.
	agent.DefaultKeptAliveForValidation = agentDescKeptAliveForValidation.Default.(bool)
	// agentDescVersion is the schema descriptor for version field.
	agentDescVersion := agentFields[17].Descriptor()
	// agent.DefaultVersion holds the default value on creation for the version field.
	agent.DefaultVersion = agentDescVersion.Default.(int)
	// agentDescRegisteredAt is the schema descriptor for registered_at field.
	agentDescRegisteredAt := agentFields[19].Descriptor()
	// agent.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	agent.DefaultRegisteredAt = agentDescRegisteredAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[20].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentbaselineFields := schema.AgentBaseline{}.Fields()
	_ = agentbaselineFields
	// agentbaselineDescLatencyMeanMs is the schema descriptor for latency_mean_ms field.
	agentbaselineDescLatencyMeanMs := agentbaselineFields[2].Descriptor()
	// agentbaseline.DefaultLatencyMeanMs holds the default value on creation for the latency_mean_ms field.
	agentbaseline.DefaultLatencyMeanMs = agentbaselineDescLatencyMeanMs.Default.(float64)
	// agentbaselineDescLatencyStddevMs is the schema descriptor for latency_stddev_ms field.
	agentbaselineDescLatencyStddevMs := agentbaselineFields[3].Descriptor()
	// agentbaseline.DefaultLatencyStddevMs holds the default value on creation for the latency_stddev_ms field.
	agentbaseline.DefaultLatencyStddevMs = agentbaselineDescLatencyStddevMs.Default.(float64)
	// agentbaselineDescErrorRate is the schema descriptor for error_rate field.
	agentbaselineDescErrorRate := agentbaselineFields[4].Descriptor()
	// agentbaseline.DefaultErrorRate holds the default value on creation for the error_rate field.
	agentbaseline.DefaultErrorRate = agentbaselineDescErrorRate.Default.(float64)
	// agentbaselineDescCPUMean is the schema descriptor for cpu_mean field.
	agentbaselineDescCPUMean := agentbaselineFields[5].Descriptor()
	// agentbaseline.DefaultCPUMean holds the default value on creation for the cpu_mean field.
	agentbaseline.DefaultCPUMean = agentbaselineDescCPUMean.Default.(float64)
	// agentbaselineDescCPUStddev is the schema descriptor for cpu_stddev field.
	agentbaselineDescCPUStddev := agentbaselineFields[6].Descriptor()
	// agentbaseline.DefaultCPUStddev holds the default value on creation for the cpu_stddev field.
	agentbaseline.DefaultCPUStddev = agentbaselineDescCPUStddev.Default.(float64)
	// agentbaselineDescMemMean is the schema descriptor for mem_mean field.
	agentbaselineDescMemMean := agentbaselineFields[7].Descriptor()
	// agentbaseline.DefaultMemMean holds the default value on creation for the mem_mean field.
	agentbaseline.DefaultMemMean = agentbaselineDescMemMean.Default.(float64)
	// agentbaselineDescMemStddev is the schema descriptor for mem_stddev field.
	agentbaselineDescMemStddev := agentbaselineFields[8].Descriptor()
	// agentbaseline.DefaultMemStddev holds the default value on creation for the mem_stddev field.
	agentbaseline.DefaultMemStddev = agentbaselineDescMemStddev.Default.(float64)
	// agentbaselineDescSampleCount is the schema descriptor for sample_count field.
	agentbaselineDescSampleCount := agentbaselineFields[9].Descriptor()
	// agentbaseline.DefaultSampleCount holds the default value on creation for the sample_count field.
	agentbaseline.DefaultSampleCount = agentbaselineDescSampleCount.Default.(int64)
	// agentbaselineDescUpdatedAt is the schema descriptor for updated_at field.
	agentbaselineDescUpdatedAt := agentbaselineFields[10].Descriptor()
	// agentbaseline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentbaseline.DefaultUpdatedAt = agentbaselineDescUpdatedAt.Default.(func() time.Time)
	// agentbaseline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentbaseline.UpdateDefaultUpdatedAt = agentbaselineDescUpdatedAt.UpdateDefault.(func() time.Time)
	budgetFields := schema.Budget{}.Fields()
	_ = budgetFields
	// budgetDescSpentUsd is the schema descriptor for spent_usd field.
	budgetDescSpentUsd := budgetFields[4].Descriptor()
	// budget.DefaultSpentUsd holds the default value on creation for the spent_usd field.
	budget.DefaultSpentUsd = budgetDescSpentUsd.Default.(float64)
	// budgetDescReservedUsd is the schema descriptor for reserved_usd field.
	budgetDescReservedUsd := budgetFields[5].Descriptor()
	// budget.DefaultReservedUsd holds the default value on creation for the reserved_usd field.
	budget.DefaultReservedUsd = budgetDescReservedUsd.Default.(float64)
	// budgetDescPeriod is the schema descriptor for period field.
	budgetDescPeriod := budgetFields[6].Descriptor()
	// budget.DefaultPeriod holds the default value on creation for the period field.
	budget.DefaultPeriod = budgetDescPeriod.Default.(string)
	// budgetDescAlertThreshold is the schema descriptor for alert_threshold field.
	budgetDescAlertThreshold := budgetFields[7].Descriptor()
	// budget.DefaultAlertThreshold holds the default value on creation for the alert_threshold field.
	budget.DefaultAlertThreshold = budgetDescAlertThreshold.Default.(float64)
	// budgetDescAlerted is the schema descriptor for alerted field.
	budgetDescAlerted := budgetFields[8].Descriptor()
	// budget.DefaultAlerted holds the default value on creation for the alerted field.
	budget.DefaultAlerted = budgetDescAlerted.Default.(bool)
	// budgetDescVersion is the schema descriptor for version field.
	budgetDescVersion := budgetFields[9].Descriptor()
	// budget.DefaultVersion holds the default value on creation for the version field.
	budget.DefaultVersion = budgetDescVersion.Default.(int)
	// budgetDescCreatedAt is the schema descriptor for created_at field.
	budgetDescCreatedAt := budgetFields[10].Descriptor()
	// budget.DefaultCreatedAt holds the default value on creation for the created_at field.
	budget.DefaultCreatedAt = budgetDescCreatedAt.Default.(func() time.Time)
	// budgetDescUpdatedAt is the schema descriptor for updated_at field.
	budgetDescUpdatedAt := budgetFields[11].Descriptor()
	// budget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budget.DefaultUpdatedAt = budgetDescUpdatedAt.Default.(func() time.Time)
	// budget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budget.UpdateDefaultUpdatedAt = budgetDescUpdatedAt.UpdateDefault.(func() time.Time)
	costrecordFields := schema.CostRecord{}.Fields()
	_ = costrecordFields
	// costrecordDescPromptTokens is the schema descriptor for prompt_tokens field.
	costrecordDescPromptTokens := costrecordFields[5].Descriptor()
	// costrecord.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	costrecord.DefaultPromptTokens = costrecordDescPromptTokens.Default.(int64)
	// costrecordDescCompletionTokens is the schema descriptor for completion_tokens field.
	costrecordDescCompletionTokens := costrecordFields[6].Descriptor()
	// costrecord.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	costrecord.DefaultCompletionTokens = costrecordDescCompletionTokens.Default.(int64)
	// costrecordDescPromptCost is the schema descriptor for prompt_cost field.
	costrecordDescPromptCost := costrecordFields[7].Descriptor()
	// costrecord.DefaultPromptCost holds the default value on creation for the prompt_cost field.
	costrecord.DefaultPromptCost = costrecordDescPromptCost.Default.(float64)
	// costrecordDescCompletionCost is the schema descriptor for completion_cost field.
	costrecordDescCompletionCost := costrecordFields[8].Descriptor()
	// costrecord.DefaultCompletionCost holds the default value on creation for the completion_cost field.
	costrecord.DefaultCompletionCost = costrecordDescCompletionCost.Default.(float64)
	// costrecordDescTotalCost is the schema descriptor for total_cost field.
	costrecordDescTotalCost := costrecordFields[9].Descriptor()
	// costrecord.DefaultTotalCost holds the default value on creation for the total_cost field.
	costrecord.DefaultTotalCost = costrecordDescTotalCost.Default.(float64)
	// costrecordDescCreatedAt is the schema descriptor for created_at field.
	costrecordDescCreatedAt := costrecordFields[12].Descriptor()
	// costrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	costrecord.DefaultCreatedAt = costrecordDescCreatedAt.Default.(func() time.Time)
	guardianactionFields := schema.GuardianAction{}.Fields()
	_ = guardianactionFields
	// guardianactionDescCreatedAt is the schema descriptor for created_at field.
	guardianactionDescCreatedAt := guardianactionFields[14].Descriptor()
	// guardianaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	guardianaction.DefaultCreatedAt = guardianactionDescCreatedAt.Default.(func() time.Time)
	mergeattemptFields := schema.MergeAttempt{}.Fields()
	_ = mergeattemptFields
	// mergeattemptDescLlmInvocations is the schema descriptor for llm_invocations field.
	mergeattemptDescLlmInvocations := mergeattemptFields[9].Descriptor()
	// mergeattempt.DefaultLlmInvocations holds the default value on creation for the llm_invocations field.
	mergeattempt.DefaultLlmInvocations = mergeattemptDescLlmInvocations.Default.(int)
	// mergeattemptDescTokensUsed is the schema descriptor for tokens_used field.
	mergeattemptDescTokensUsed := mergeattemptFields[10].Descriptor()
	// mergeattempt.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	mergeattempt.DefaultTokensUsed = mergeattemptDescTokensUsed.Default.(int64)
	// mergeattemptDescCostUsd is the schema descriptor for cost_usd field.
	mergeattemptDescCostUsd := mergeattemptFields[11].Descriptor()
	// mergeattempt.DefaultCostUsd holds the default value on creation for the cost_usd field.
	mergeattempt.DefaultCostUsd = mergeattemptDescCostUsd.Default.(float64)
	// mergeattemptDescCreatedAt is the schema descriptor for created_at field.
	mergeattemptDescCreatedAt := mergeattemptFields[14].Descriptor()
	// mergeattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergeattempt.DefaultCreatedAt = mergeattemptDescCreatedAt.Default.(func() time.Time)
	sandboxallocationFields := schema.SandboxAllocation{}.Fields()
	_ = sandboxallocationFields
	// sandboxallocationDescVersion is the schema descriptor for version field.
	sandboxallocationDescVersion := sandboxallocationFields[7].Descriptor()
	// sandboxallocation.DefaultVersion holds the default value on creation for the version field.
	sandboxallocation.DefaultVersion = sandboxallocationDescVersion.Default.(int)
	// sandboxallocationDescCreatedAt is the schema descriptor for created_at field.
	sandboxallocationDescCreatedAt := sandboxallocationFields[9].Descriptor()
	// sandboxallocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxallocation.DefaultCreatedAt = sandboxallocationDescCreatedAt.Default.(func() time.Time)
	// sandboxallocationDescUpdatedAt is the schema descriptor for updated_at field.
	sandboxallocationDescUpdatedAt := sandboxallocationFields[10].Descriptor()
	// sandboxallocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sandboxallocation.DefaultUpdatedAt = sandboxallocationDescUpdatedAt.Default.(func() time.Time)
	// sandboxallocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sandboxallocation.UpdateDefaultUpdatedAt = sandboxallocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	sandboxeventFields := schema.SandboxEvent{}.Fields()
	_ = sandboxeventFields
	// sandboxeventDescCreatedAt is the schema descriptor for created_at field.
	sandboxeventDescCreatedAt := sandboxeventFields[9].Descriptor()
	// sandboxevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxevent.DefaultCreatedAt = sandboxeventDescCreatedAt.Default.(func() time.Time)
	sandboxmessageFields := schema.SandboxMessage{}.Fields()
	_ = sandboxmessageFields
	// sandboxmessageDescCancel is the schema descriptor for cancel field.
	sandboxmessageDescCancel := sandboxmessageFields[4].Descriptor()
	// sandboxmessage.DefaultCancel holds the default value on creation for the cancel field.
	sandboxmessage.DefaultCancel = sandboxmessageDescCancel.Default.(bool)
	// sandboxmessageDescAcked is the schema descriptor for acked field.
	sandboxmessageDescAcked := sandboxmessageFields[5].Descriptor()
	// sandboxmessage.DefaultAcked holds the default value on creation for the acked field.
	sandboxmessage.DefaultAcked = sandboxmessageDescAcked.Default.(bool)
	// sandboxmessageDescCreatedAt is the schema descriptor for created_at field.
	sandboxmessageDescCreatedAt := sandboxmessageFields[6].Descriptor()
	// sandboxmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	sandboxmessage.DefaultCreatedAt = sandboxmessageDescCreatedAt.Default.(func() time.Time)
	specdocFields := schema.SpecDoc{}.Fields()
	_ = specdocFields
	// specdocDescArchived is the schema descriptor for archived field.
	specdocDescArchived := specdocFields[10].Descriptor()
	// specdoc.DefaultArchived holds the default value on creation for the archived field.
	specdoc.DefaultArchived = specdocDescArchived.Default.(bool)
	// specdocDescVersion is the schema descriptor for version field.
	specdocDescVersion := specdocFields[12].Descriptor()
	// specdoc.DefaultVersion holds the default value on creation for the version field.
	specdoc.DefaultVersion = specdocDescVersion.Default.(int)
	// specdocDescCreatedAt is the schema descriptor for created_at field.
	specdocDescCreatedAt := specdocFields[13].Descriptor()
	// specdoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	specdoc.DefaultCreatedAt = specdocDescCreatedAt.Default.(func() time.Time)
	// specdocDescUpdatedAt is the schema descriptor for updated_at field.
	specdocDescUpdatedAt := specdocFields[14].Descriptor()
	// specdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	specdoc.DefaultUpdatedAt = specdocDescUpdatedAt.Default.(func() time.Time)
	// specdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	specdoc.UpdateDefaultUpdatedAt = specdocDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriorityBase is the schema descriptor for priority_base field.
	taskDescPriorityBase := taskFields[5].Descriptor()
	// task.DefaultPriorityBase holds the default value on creation for the priority_base field.
	task.DefaultPriorityBase = taskDescPriorityBase.Default.(int)
	// taskDescScore is the schema descriptor for score field.
	taskDescScore := taskFields[6].Descriptor()
	// task.DefaultScore holds the default value on creation for the score field.
	task.DefaultScore = taskDescScore.Default.(float64)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[8].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[9].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	taskDescTimeoutSeconds := taskFields[10].Descriptor()
	// task.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	task.DefaultTimeoutSeconds = taskDescTimeoutSeconds.Default.(int)
	// taskDescVersion is the schema descriptor for version field.
	taskDescVersion := taskFields[23].Descriptor()
	// task.DefaultVersion holds the default value on creation for the version field.
	task.DefaultVersion = taskDescVersion.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[26].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[27].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescPriority is the schema descriptor for priority field.
	ticketDescPriority := ticketFields[6].Descriptor()
	// ticket.DefaultPriority holds the default value on creation for the priority field.
	ticket.DefaultPriority = ticketDescPriority.Default.(int)
	// ticketDescIsBlocked is the schema descriptor for is_blocked field.
	ticketDescIsBlocked := ticketFields[8].Descriptor()
	// ticket.DefaultIsBlocked holds the default value on creation for the is_blocked field.
	ticket.DefaultIsBlocked = ticketDescIsBlocked.Default.(bool)
	// ticketDescVersion is the schema descriptor for version field.
	ticketDescVersion := ticketFields[15].Descriptor()
	// ticket.DefaultVersion holds the default value on creation for the version field.
	ticket.DefaultVersion = ticketDescVersion.Default.(int)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[16].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[17].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
}
