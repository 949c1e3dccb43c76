package merge

import (
	"context"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/session"
)

// stubTurnRunner answers every turn with a fixed text block and usage.
type stubTurnRunner struct {
	text    string
	costUSD float64
}

func (s *stubTurnRunner) RunTurn(_ context.Context, _ *session.Session, _ agentgw.TurnOptions) (<-chan agentgw.Block, <-chan error) {
	blocks := make(chan agentgw.Block, 2)
	errs := make(chan error, 1)
	blocks <- agentgw.Block{Type: agentgw.BlockText, Content: s.text}
	blocks <- agentgw.Block{
		Type:       agentgw.BlockComplete,
		StopReason: "end_turn",
		Usage:      &agentgw.Usage{PromptTokens: 200, CompletionTokens: 100, CostUSD: s.costUSD},
	}
	close(blocks)
	errs <- nil
	return blocks, errs
}
