package specflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrSpecFailed is returned when a phase exhausts its evaluation attempts.
var ErrSpecFailed = errors.New("spec failed")

// PhaseResult is what an executor hands back after driving the agent through
// one phase attempt. OutputPath points at the structured output file the
// executor wrote; the machine reads the file, never chat text.
type PhaseResult struct {
	OutputPath    string
	PhaseData     map[string]interface{}
	TranscriptB64 string
	CostUSD       float64
}

// Executor drives the coding agent for one phase with a capped budget.
type Executor interface {
	ExecutePhase(ctx context.Context, phase Phase, prompt string) (*PhaseResult, error)
}

// Evaluation scores one phase attempt.
type Evaluation struct {
	Score    float64                `json:"score"`
	Passed   bool                   `json:"passed"`
	Feedback string                 `json:"feedback"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Evaluator judges a phase's structured output file.
type Evaluator interface {
	Evaluate(ctx context.Context, phase Phase, outputPath string) (*Evaluation, error)
}

// CheckpointSink persists phase progress so a fresh sandbox can resume the
// spec at the next phase.
type CheckpointSink interface {
	SaveCheckpoint(ctx context.Context, specID string, phase Phase, phaseData map[string]interface{}, transcriptB64 string) error
	RecordAttempt(ctx context.Context, specID string, phase Phase, passed bool, feedback string) (int, error)
	PhaseAdvanced(ctx context.Context, specID string, next Phase) error
}

// MachineConfig tunes the phase loop.
type MachineConfig struct {
	PassThreshold       float64
	MaxAttemptsPerPhase int
}

// DefaultMachineConfig returns the built-in thresholds.
func DefaultMachineConfig() MachineConfig {
	return MachineConfig{
		PassThreshold:       0.7,
		MaxAttemptsPerPhase: 3,
	}
}

// Machine runs a spec through its phases.
type Machine struct {
	cfg       MachineConfig
	executor  Executor
	evaluator Evaluator
	sink      CheckpointSink
}

// NewMachine creates a phase machine.
func NewMachine(cfg MachineConfig, executor Executor, evaluator Evaluator, sink CheckpointSink) *Machine {
	if cfg.PassThreshold <= 0 {
		cfg.PassThreshold = 0.7
	}
	if cfg.MaxAttemptsPerPhase <= 0 {
		cfg.MaxAttemptsPerPhase = 3
	}
	return &Machine{cfg: cfg, executor: executor, evaluator: evaluator, sink: sink}
}

// RunState carries the spec identity and accumulated context across phases.
type RunState struct {
	SpecID      string
	Title       string
	Description string
	Phase       Phase
	PhaseData   map[string]interface{}
	TotalCost   float64
}

// Run executes phases from state.Phase until COMPLETE or failure. The state
// is mutated in place so a caller can checkpoint and resume after an error.
func (m *Machine) Run(ctx context.Context, state *RunState) error {
	if state.PhaseData == nil {
		state.PhaseData = make(map[string]interface{})
	}

	for !state.Phase.Terminal() {
		if err := m.runPhase(ctx, state); err != nil {
			return err
		}
		next := state.Phase.Next()
		if err := m.sink.PhaseAdvanced(ctx, state.SpecID, next); err != nil {
			return fmt.Errorf("failed to advance spec %s to %s: %w", state.SpecID, next, err)
		}
		state.Phase = next
	}
	return nil
}

// runPhase tries one phase up to MaxAttemptsPerPhase times, feeding evaluator
// feedback back into the prompt.
func (m *Machine) runPhase(ctx context.Context, state *RunState) error {
	log := slog.With("spec_id", state.SpecID, "phase", state.Phase)
	feedback := ""

	for attempt := 1; attempt <= m.cfg.MaxAttemptsPerPhase; attempt++ {
		prompt, err := RenderPrompt(state.Phase, PromptParams{
			Title:        state.Title,
			Description:  state.Description,
			PhaseContext: summarizePhaseData(state.PhaseData),
			Feedback:     feedback,
			OutputPath:   outputPath(state.Phase),
		})
		if err != nil {
			return err
		}

		log.Info("Executing phase attempt", "attempt", attempt)
		result, err := m.executor.ExecutePhase(ctx, state.Phase, prompt)
		if err != nil {
			return fmt.Errorf("phase %s execution failed: %w", state.Phase, err)
		}
		state.TotalCost += result.CostUSD

		eval, err := m.evaluator.Evaluate(ctx, state.Phase, result.OutputPath)
		if err != nil {
			return fmt.Errorf("phase %s evaluation failed: %w", state.Phase, err)
		}
		passed := eval.Passed && eval.Score >= m.cfg.PassThreshold

		if _, err := m.sink.RecordAttempt(ctx, state.SpecID, state.Phase, passed, eval.Feedback); err != nil {
			log.Warn("Failed to record phase attempt", "error", err)
		}

		if passed {
			for k, v := range result.PhaseData {
				state.PhaseData[k] = v
			}
			state.PhaseData[fmt.Sprintf("%s_completed_at", state.Phase)] = time.Now().UTC().Format(time.RFC3339)

			if err := m.sink.SaveCheckpoint(ctx, state.SpecID, state.Phase, state.PhaseData, result.TranscriptB64); err != nil {
				return fmt.Errorf("failed to checkpoint spec %s after %s: %w", state.SpecID, state.Phase, err)
			}
			log.Info("Phase passed", "score", eval.Score, "attempt", attempt)
			return nil
		}

		log.Warn("Phase attempt rejected", "score", eval.Score, "attempt", attempt, "feedback", eval.Feedback)
		feedback = eval.Feedback
	}

	return fmt.Errorf("phase %s exhausted %d attempts: %w", state.Phase, m.cfg.MaxAttemptsPerPhase, ErrSpecFailed)
}

func outputPath(phase Phase) string {
	switch phase {
	case PhaseSync:
		return "spec_output/"
	default:
		return fmt.Sprintf("spec_output/%s.md", phase)
	}
}

// summarizePhaseData renders accumulated phase data as prompt context.
func summarizePhaseData(data map[string]interface{}) string {
	if len(data) == 0 {
		return "(none yet)"
	}
	out := ""
	for _, p := range phaseOrder {
		key := string(p) + "_summary"
		if v, ok := data[key].(string); ok {
			out += fmt.Sprintf("## %s\n%s\n\n", p, v)
		}
	}
	if out == "" {
		return fmt.Sprintf("(%d phase data entries, no summaries)", len(data))
	}
	return out
}
