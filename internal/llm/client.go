package llm

import (
	"context"
)

// LLMClient generates a completion for a prompt. Used by the search prompt
// interpreter; the scoring pipeline itself never calls a model.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
