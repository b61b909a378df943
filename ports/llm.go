package ports

import "context"

// LLMClient is the entire contract with the external model collaborator: one
// prompt in, raw text out. Transport and timeout failures surface as errors;
// the generation layer treats every error from this boundary as retryable.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
