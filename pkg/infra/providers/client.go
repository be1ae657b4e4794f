package providers

import (
	"context"
)

// Generator produces a model response for a user prompt. The chat
// endpoint verifies whatever comes back before delivering it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
