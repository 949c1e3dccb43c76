package worker

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/helmsman-ai/helmsman/pkg/session"
)

// Default per-million-token prices used when the environment does not
// override them. Upper-bound figures: over-estimating only makes the
// projection more conservative.
const (
	defaultPromptPricePerMTok     = 5.0
	defaultCompletionPricePerMTok = 25.0
)

// CostEstimator projects the cost of the next agent turn before it is made:
// prompt tokens are counted from the transcript, completion tokens assumed
// at the model maximum. The projection gates the turn against the remaining
// budget so the cap is never breached mid-call.
type CostEstimator struct {
	once sync.Once
	enc  *tiktoken.Tiktoken

	model                  string
	promptPricePerMTok     float64
	completionPricePerMTok float64
	maxCompletionTokens    int
}

// NewCostEstimator creates an estimator for the given model. Prices are
// USD per million tokens; zero values fall back to the defaults.
func NewCostEstimator(model string, promptPricePerMTok, completionPricePerMTok float64) *CostEstimator {
	if promptPricePerMTok <= 0 {
		promptPricePerMTok = defaultPromptPricePerMTok
	}
	if completionPricePerMTok <= 0 {
		completionPricePerMTok = defaultCompletionPricePerMTok
	}
	return &CostEstimator{
		model:                  model,
		promptPricePerMTok:     promptPricePerMTok,
		completionPricePerMTok: completionPricePerMTok,
		maxCompletionTokens:    8192,
	}
}

// encoding resolves the tokenizer lazily: EncodingForModel may fetch the
// BPE ranks on first use, which does not belong in the constructor.
func (e *CostEstimator) encoding() *tiktoken.Tiktoken {
	e.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(e.model)
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
			if err != nil {
				return
			}
		}
		e.enc = enc
	})
	return e.enc
}

// CountTokens returns the token count of text, falling back to a bytes/4
// heuristic when no tokenizer is available.
func (e *CostEstimator) CountTokens(text string) int {
	if enc := e.encoding(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(text)/4 + 1
}

// ProjectTurnCost returns an upper-bound USD cost for one turn over the
// given transcript.
func (e *CostEstimator) ProjectTurnCost(sess *session.Session) float64 {
	snapshot := sess.Clone()
	promptTokens := 0
	for _, msg := range snapshot.Messages {
		promptTokens += e.CountTokens(msg.Content)
		// Per-message framing overhead.
		promptTokens += 4
	}
	return float64(promptTokens)/1e6*e.promptPricePerMTok +
		float64(e.maxCompletionTokens)/1e6*e.completionPricePerMTok
}
