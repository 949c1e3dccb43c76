// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentBaseline is the predicate function for agentbaseline builders.
type AgentBaseline func(*sql.Selector)

// Budget is the predicate function for budget builders.
type Budget func(*sql.Selector)

// CostRecord is the predicate function for costrecord builders.
type CostRecord func(*sql.Selector)

// GuardianAction is the predicate function for guardianaction builders.
type GuardianAction func(*sql.Selector)

// MergeAttempt is the predicate function for mergeattempt builders.
type MergeAttempt func(*sql.Selector)

// SandboxAllocation is the predicate function for sandboxallocation builders.
type SandboxAllocation func(*sql.Selector)

// SandboxEvent is the predicate function for sandboxevent builders.
type SandboxEvent func(*sql.Selector)

// SandboxMessage is the predicate function for sandboxmessage builders.
type SandboxMessage func(*sql.Selector)

// SpecDoc is the predicate function for specdoc builders.
type SpecDoc func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)
