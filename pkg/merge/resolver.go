package merge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/session"
)

// ResolverCaps bounds the LLM-assisted resolver across one coordinator's
// lifetime. A zero cap disables that dimension.
type ResolverCaps struct {
	MaxInvocations int     `yaml:"max_invocations"`
	MaxTokens      int64   `yaml:"max_tokens"`
	MaxCostUSD     float64 `yaml:"max_cost_usd"`
}

// DefaultResolverCaps keeps conflict resolution cheap: it is a tiebreaker,
// not a second implementation pass.
func DefaultResolverCaps() ResolverCaps {
	return ResolverCaps{
		MaxInvocations: 10,
		MaxTokens:      100_000,
		MaxCostUSD:     2.0,
	}
}

// TurnRunner matches agentgw.Client.RunTurn.
type TurnRunner interface {
	RunTurn(ctx context.Context, sess *session.Session, opts agentgw.TurnOptions) (<-chan agentgw.Block, <-chan error)
}

// LLMResolver resolves merge conflicts with a single agent turn per file,
// bounded by ResolverCaps.
type LLMResolver struct {
	agent TurnRunner
	caps  ResolverCaps

	mu          sync.Mutex
	invocations int
	tokens      int64
	costUSD     float64
}

// NewLLMResolver creates a resolver over the agent gateway.
func NewLLMResolver(agent TurnRunner, caps ResolverCaps) *LLMResolver {
	return &LLMResolver{agent: agent, caps: caps}
}

const resolverSystemPrompt = `You are a merge conflict resolver. You receive both sides of a conflicted file and must produce the merged content. Keep every intentional change from both sides; when the sides genuinely contradict, prefer the incoming branch. Reply with ONLY the full resolved file content, no fences, no commentary.`

func (r *LLMResolver) Resolve(ctx context.Context, target, branch string, conflict Conflict) (string, ResolveUsage, error) {
	if err := r.admit(); err != nil {
		return "", ResolveUsage{}, err
	}

	sess := &session.Session{ID: "merge-" + conflict.Path}
	sess.AddMessage(session.RoleSystem, resolverSystemPrompt)
	sess.AddMessage(session.RoleUser, fmt.Sprintf(
		"File %q conflicts merging branch %q into %q.\n\n--- CURRENT (%s) ---\n%s\n\n--- INCOMING (%s) ---\n%s\n",
		conflict.Path, branch, target, target, conflict.Ours, branch, conflict.Theirs))

	blocks, errs := r.agent.RunTurn(ctx, sess, agentgw.TurnOptions{})

	var text strings.Builder
	var usage ResolveUsage
	for block := range blocks {
		switch block.Type {
		case agentgw.BlockText:
			text.WriteString(block.Content)
		case agentgw.BlockComplete:
			if block.Usage != nil {
				usage.Tokens = block.Usage.PromptTokens + block.Usage.CompletionTokens
				usage.CostUSD = block.Usage.CostUSD
			}
		}
	}
	r.record(usage)

	if err := <-errs; err != nil {
		return "", usage, fmt.Errorf("resolver turn for %s failed: %w", conflict.Path, err)
	}
	content := text.String()
	if strings.TrimSpace(content) == "" {
		return "", usage, fmt.Errorf("resolver produced empty content for %s", conflict.Path)
	}
	return content, usage, nil
}

// admit rejects the invocation when any cap is already spent.
func (r *LLMResolver) admit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.MaxInvocations > 0 && r.invocations >= r.caps.MaxInvocations {
		return fmt.Errorf("%w: %d invocations", ErrResolverExhausted, r.invocations)
	}
	if r.caps.MaxTokens > 0 && r.tokens >= r.caps.MaxTokens {
		return fmt.Errorf("%w: %d tokens", ErrResolverExhausted, r.tokens)
	}
	if r.caps.MaxCostUSD > 0 && r.costUSD >= r.caps.MaxCostUSD {
		return fmt.Errorf("%w: $%.4f", ErrResolverExhausted, r.costUSD)
	}
	r.invocations++
	return nil
}

func (r *LLMResolver) record(usage ResolveUsage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens += usage.Tokens
	r.costUSD += usage.CostUSD
}

// Totals returns the resolver's accumulated accounting.
func (r *LLMResolver) Totals() (invocations int, tokens int64, costUSD float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invocations, r.tokens, r.costUSD
}
