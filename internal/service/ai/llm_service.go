package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/akshtaaaaa/excel-mock-interviewer/internal/config"
)

// Service runs completions through an eino chain backed by the Ark model.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	timeout   time.Duration
}

// NewService creates the gateway from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
		timeout:   cfg.Timeout,
	}, nil
}

// Generate runs one blocking completion, bounded by the configured timeout.
func (s *Service) Generate(ctx context.Context, req Request) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.chain.Invoke(ctx, chainInput(req))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to run chat chain: %w", err)
	}

	reply := Reply{Content: response.Content}
	if response.ResponseMeta != nil && response.ResponseMeta.Usage != nil {
		reply.PromptTokens = response.ResponseMeta.Usage.PromptTokens
		reply.CompletionTokens = response.ResponseMeta.Usage.CompletionTokens
	}
	return reply, nil
}

// GenerateStream returns the raw chunk stream for SSE delivery. The caller
// owns the reader and must close it.
func (s *Service) GenerateStream(ctx context.Context, req Request) (*schema.StreamReader[*schema.Message], error) {
	stream, err := s.chain.Stream(ctx, chainInput(req))
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}
	return stream, nil
}

func chainInput(req Request) map[string]any {
	return map[string]any{
		"system":  req.System,
		"history": historyMessages(req.History),
		"query":   req.Query,
	}
}

func historyMessages(history []Exchange) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history)*2)
	for _, exchange := range history {
		messages = append(messages, schema.AssistantMessage(exchange.Question, nil))
		messages = append(messages, schema.UserMessage(exchange.Answer))
	}
	return messages
}
