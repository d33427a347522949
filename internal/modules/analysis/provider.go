package analysis

import (
	"context"
	"errors"
	"strings"

	appcfg "github.com/decklens/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

// Completer issues one blocking completion request.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// OpenAICompleter talks to an OpenAI-compatible chat-completions endpoint
// (the xAI API by default).
type OpenAICompleter struct {
	client openaiclient.Client
	model  string
}

// NewOpenAICompleter builds the client from the AI configuration.
func NewOpenAICompleter(cfg appcfg.AIConfig) *OpenAICompleter {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	return &OpenAICompleter{
		client: openaiclient.NewClient(opts...),
		model:  strings.TrimSpace(cfg.Model),
	}
}

func (p *OpenAICompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(p.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(system),
			openaiclient.UserMessage(prompt),
		},
		Temperature: openaiclient.Float(0.7),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("empty response from model")
	}
	return content, nil
}
