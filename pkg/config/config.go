// Package config loads and validates the orchestrator's configuration:
// one helmsman.yaml overlaying built-in defaults, with environment
// variables expanded through {{.VAR}} template syntax.
package config

import (
	"github.com/helmsman-ai/helmsman/pkg/api"
	"github.com/helmsman-ai/helmsman/pkg/guardian"
	"github.com/helmsman-ai/helmsman/pkg/heartbeat"
	"github.com/helmsman-ai/helmsman/pkg/merge"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/retention"
	"github.com/helmsman-ai/helmsman/pkg/scheduler"
)

// Config is the fully resolved orchestrator configuration.
type Config struct {
	Server       api.Config                 `yaml:"server"`
	Scheduler    scheduler.ScoreWeights     `yaml:"scheduler"`
	Orchestrator orchestrator.Config        `yaml:"orchestrator"`
	Heartbeat    heartbeat.EscalationConfig `yaml:"heartbeat"`
	Guardian     guardian.PolicyConfig      `yaml:"guardian"`
	Resolver     merge.ResolverCaps         `yaml:"merge_resolver"`
	Retention    retention.Config           `yaml:"retention"`

	// BusQueueSize bounds each bus subscriber's delivery queue.
	BusQueueSize int `yaml:"bus_queue_size"`
}

// Default returns the built-in configuration, assembled from each
// package's own defaults.
func Default() Config {
	return Config{
		Server:       api.DefaultConfig(),
		Scheduler:    scheduler.DefaultScoreWeights(),
		Orchestrator: orchestrator.DefaultConfig(),
		Heartbeat:    heartbeat.DefaultEscalationConfig(),
		Guardian:     guardian.DefaultPolicyConfig(),
		Resolver:     merge.DefaultResolverCaps(),
		Retention:    retention.DefaultConfig(),
		BusQueueSize: 256,
	}
}
