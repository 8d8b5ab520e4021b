package ai

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// Exchange is one prior question/answer pair fed back to the model.
type Exchange struct {
	Question string
	Answer   string
}

// Request is a single completion request against the gateway.
type Request struct {
	System  string
	History []Exchange
	Query   string
}

// Reply carries the completion text plus token accounting when the provider
// reports it.
type Reply struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// Generator abstracts the hosted model so the interview controller and the
// SSE handler can be exercised with deterministic fakes.
type Generator interface {
	Generate(ctx context.Context, req Request) (Reply, error)
	GenerateStream(ctx context.Context, req Request) (*schema.StreamReader[*schema.Message], error)
}
